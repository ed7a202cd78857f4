// Package luasys runs colecs systems written in Lua.
//
// A script defines global functions taking an entity id (and, when a Frame
// resource is present, the frame delta) and uses the global `store` table to
// read and write component state:
//
//	function regen(e, dt)
//	    local hp = store.get(e, "health")
//	    store.set(e, "health", math.min(hp + 5 * dt, 100))
//	end
//
// Components are addressed by id or name. Lua systems go through the
// dynamic Float accessors and allocate per call; keep hot loops in Go.
package luasys

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edwinsyarief/colecs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Frame is the resource a Lua system reads its delta time from.
type Frame struct {
	Delta float64
}

// Engine wraps a single gopher-lua VM bound to one store. Like the store it
// is used from one goroutine only.
type Engine struct {
	vm      *lua.LState
	store   *colecs.Store
	log     *zap.Logger
	lastErr error
}

// NewEngine creates a VM and installs the `store` API table.
func NewEngine(store *colecs.Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		vm:    lua.NewState(),
		store: store,
		log:   log,
	}
	e.vm.SetGlobal("store", e.vm.SetFuncs(e.vm.NewTable(), map[string]lua.LGFunction{
		"get":   e.luaGet,
		"set":   e.luaSet,
		"on":    e.luaOn,
		"off":   e.luaOff,
		"has":   e.luaHas,
		"free":  e.luaFree,
		"alloc": e.luaAlloc,
		"count": e.luaCount,
		"id":    e.luaID,
	}))
	return e
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// LoadString runs a chunk of Lua source, typically function definitions.
func (e *Engine) LoadString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load lua chunk: %w", err)
	}
	return nil
}

// LoadFile runs one Lua file.
func (e *Engine) LoadFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

// LoadDir runs every .lua file in dir in name order. A missing directory is
// not an error.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		if err := e.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// System returns a colecs.System calling the global Lua function fnName.
func (e *Engine) System(fnName string) (colecs.System, error) {
	fn, ok := e.vm.GetGlobal(fnName).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("lua function %s not found", fnName)
	}
	return func(_ *colecs.Store, ent colecs.Entity, res *colecs.Resources) {
		args := []lua.LValue{lua.LNumber(ent)}
		if f, ok := colecs.Resource[Frame](res); ok {
			args = append(args, lua.LNumber(f.Delta))
		}
		err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
		if err != nil {
			e.lastErr = err
			e.log.Error("lua system failed",
				zap.String("function", fnName),
				zap.Uint32("entity", uint32(ent)),
				zap.Error(err),
			)
		}
	}, nil
}

// RegisterSystem binds the global Lua function fnName to component c.
func (e *Engine) RegisterSystem(c colecs.ComponentID, fnName string) error {
	sys, err := e.System(fnName)
	if err != nil {
		return err
	}
	e.store.RegisterSystem(c, sys)
	return nil
}

// LastError returns the most recent error raised by a Lua system, or nil.
func (e *Engine) LastError() error {
	return e.lastErr
}

// ClearError forgets the last system error.
func (e *Engine) ClearError() {
	e.lastErr = nil
}

func (e *Engine) entity(L *lua.LState, n int) colecs.Entity {
	v := L.CheckInt(n)
	if v < 0 || v >= e.store.Capacity() {
		L.ArgError(n, fmt.Sprintf("entity %d out of range [0, %d)", v, e.store.Capacity()))
	}
	return colecs.Entity(v)
}

func (e *Engine) component(L *lua.LState, n int) colecs.ComponentID {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		if v < 0 || int(v) >= e.store.ComponentCount() {
			L.ArgError(n, fmt.Sprintf("unknown component id %d", int(v)))
		}
		return colecs.ComponentID(v)
	case lua.LString:
		id, ok := e.store.ComponentID(string(v))
		if !ok {
			L.ArgError(n, fmt.Sprintf("unknown component %q", string(v)))
		}
		return id
	}
	L.ArgError(n, "component id or name expected")
	return 0
}

// store.get(e, c [, slot]) -> number | nil
func (e *Engine) luaGet(L *lua.LState) int {
	ent := e.entity(L, 1)
	c := e.component(L, 2)
	slot := L.OptInt(3, 0)
	v, ok := e.store.Float(ent, c, slot)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

// store.set(e, c, v [, slot]) -> bool
func (e *Engine) luaSet(L *lua.LState) int {
	ent := e.entity(L, 1)
	c := e.component(L, 2)
	v := L.CheckNumber(3)
	slot := L.OptInt(4, 0)
	L.Push(lua.LBool(e.store.SetFloat(ent, c, slot, float64(v))))
	return 1
}

func (e *Engine) luaOn(L *lua.LState) int {
	e.store.ComponentOn(e.entity(L, 1), e.component(L, 2))
	return 0
}

func (e *Engine) luaOff(L *lua.LState) int {
	e.store.ComponentOff(e.entity(L, 1), e.component(L, 2))
	return 0
}

func (e *Engine) luaHas(L *lua.LState) int {
	L.Push(lua.LBool(e.store.HasComponent(e.entity(L, 1), e.component(L, 2))))
	return 1
}

func (e *Engine) luaFree(L *lua.LState) int {
	e.store.FreeEntity(e.entity(L, 1))
	return 0
}

// store.alloc() -> entity | nil
func (e *Engine) luaAlloc(L *lua.LState) int {
	ent, ok := e.store.AllocateEntity()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(ent))
	return 1
}

func (e *Engine) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.store.ActiveCount(e.component(L, 1))))
	return 1
}

// store.id(name) -> id | nil
func (e *Engine) luaID(L *lua.LState) int {
	id, ok := e.store.ComponentID(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(id))
	return 1
}
