// Package schema registers colecs components from a YAML description:
//
//	components:
//	  - name: pos
//	    type: float32
//	    slots: 3
//	  - name: alive
//	    type: uint8
//	  - name: label
//	    type: boxed
//
// Slots defaults to 1.
package schema

import (
	"errors"
	"fmt"
	"os"

	"github.com/edwinsyarief/colecs"
	"gopkg.in/yaml.v3"
)

// Component is one entry of a schema.
type Component struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Slots int    `yaml:"slots,omitempty"`
}

// Schema is an ordered list of components. Order fixes component ids.
type Schema struct {
	Components []Component `yaml:"components"`
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML data and validates every entry.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names, types and slot counts without touching a store.
func (s *Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Components))
	var errs []error
	for i, c := range s.Components {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("component %d: missing name", i))
			continue
		}
		if _, dup := seen[c.Name]; dup {
			errs = append(errs, fmt.Errorf("component %q: %w", c.Name, colecs.ErrDuplicateComponentName))
		}
		seen[c.Name] = struct{}{}
		if _, err := colecs.ParseElementType(c.Type); err != nil {
			errs = append(errs, fmt.Errorf("component %q: %w", c.Name, err))
		}
		if c.Slots < 0 {
			errs = append(errs, fmt.Errorf("component %q: %w %d", c.Name, colecs.ErrInvalidSlotCount, c.Slots))
		}
	}
	return errors.Join(errs...)
}

// Apply registers every component on store in order and returns their ids
// by name. It stops at the first registration error.
func (s *Schema) Apply(store *colecs.Store) (map[string]colecs.ComponentID, error) {
	ids := make(map[string]colecs.ComponentID, len(s.Components))
	for _, c := range s.Components {
		kind, err := colecs.ParseElementType(c.Type)
		if err != nil {
			return ids, fmt.Errorf("component %q: %w", c.Name, err)
		}
		slots := c.Slots
		if slots == 0 {
			slots = 1
		}
		id, err := store.RegisterComponent(c.Name, kind, slots)
		if err != nil {
			return ids, err
		}
		ids[c.Name] = id
	}
	return ids, nil
}
