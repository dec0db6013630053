// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/lav"
)

// ErrClosed is returned when a Runtime is used after Close.
var ErrClosed = errors.New("script: runtime closed")

// Runtime owns a Lua state with the lav engine bound into it.
type Runtime struct {
	mu       sync.Mutex
	state    *lua.LState
	graphics *lav.Graphics
	timer    *lav.Timer
	closed   bool
}

// Option configures a Runtime during creation.
type Option func(*runtimeOptions)

type runtimeOptions struct {
	timer *lav.Timer
}

// WithTimer supplies a shared frame timer; by default the Runtime creates
// its own.
func WithTimer(t *lav.Timer) Option {
	return func(o *runtimeOptions) {
		o.timer = t
	}
}

// New creates a Runtime bound to the given engine and registers the `lav`
// global table.
func New(g *lav.Graphics, opts ...Option) *Runtime {
	options := runtimeOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.timer == nil {
		options.timer = lav.NewTimer()
	}

	r := &Runtime{
		state:    lua.NewState(),
		graphics: g,
		timer:    options.timer,
	}
	r.register()
	return r
}

// register builds the lav global: a graphics subtable mapping one-to-one
// onto engine operations and a timer subtable. Bound functions do not lock;
// they only ever run inside a Runtime entry that already holds the mutex.
func (r *Runtime) register() {
	l := r.state

	graphics := l.NewTable()
	l.SetField(graphics, "setClearColor", l.NewFunction(func(l *lua.LState) int {
		r.graphics.SetClearColor(lav.RGBA4(
			float64(l.CheckNumber(1)),
			float64(l.CheckNumber(2)),
			float64(l.CheckNumber(3)),
			float64(l.CheckNumber(4)),
		))
		return 0
	}))
	l.SetField(graphics, "present", l.NewFunction(func(l *lua.LState) int {
		r.graphics.Present()
		return 0
	}))
	l.SetField(graphics, "rectangle", l.NewFunction(func(l *lua.LState) int {
		r.graphics.Rectangle(
			float64(l.CheckNumber(1)),
			float64(l.CheckNumber(2)),
			float64(l.CheckNumber(3)),
			float64(l.CheckNumber(4)),
		)
		return 0
	}))
	l.SetField(graphics, "setColor", l.NewFunction(func(l *lua.LState) int {
		r.graphics.SetColor(lav.RGBA4(
			float64(l.CheckNumber(1)),
			float64(l.CheckNumber(2)),
			float64(l.CheckNumber(3)),
			float64(l.CheckNumber(4)),
		))
		return 0
	}))
	l.SetField(graphics, "translate", l.NewFunction(func(l *lua.LState) int {
		r.graphics.Translate(float64(l.CheckNumber(1)), float64(l.CheckNumber(2)))
		return 0
	}))
	l.SetField(graphics, "rotate", l.NewFunction(func(l *lua.LState) int {
		r.graphics.Rotate(float64(l.CheckNumber(1)))
		return 0
	}))
	l.SetField(graphics, "origin", l.NewFunction(func(l *lua.LState) int {
		r.graphics.Origin()
		return 0
	}))
	l.SetField(graphics, "requestSwapchainRecreation", l.NewFunction(func(l *lua.LState) int {
		r.graphics.RequestSwapchainRecreation()
		return 0
	}))

	timer := l.NewTable()
	l.SetField(timer, "step", l.NewFunction(func(l *lua.LState) int {
		r.timer.Step()
		return 0
	}))
	l.SetField(timer, "getFPS", l.NewFunction(func(l *lua.LState) int {
		l.Push(lua.LNumber(r.timer.FPS()))
		return 1
	}))
	l.SetField(timer, "getTime", l.NewFunction(func(l *lua.LState) int {
		l.Push(lua.LNumber(r.timer.Time()))
		return 1
	}))
	l.SetField(timer, "getDelta", l.NewFunction(func(l *lua.LState) int {
		l.Push(lua.LNumber(r.timer.Delta()))
		return 1
	}))
	l.SetField(timer, "sleep", l.NewFunction(func(l *lua.LState) int {
		r.timer.Sleep(float64(l.CheckNumber(1)))
		return 0
	}))

	root := l.NewTable()
	l.SetField(root, "graphics", graphics)
	l.SetField(root, "timer", timer)
	l.SetGlobal("lav", root)
}

// LoadFile executes the script at path, then calls `lav.load` if the
// script defined one.
func (r *Runtime) LoadFile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.state.DoFile(path); err != nil {
		return fmt.Errorf("script: load %s: %w", path, err)
	}
	return r.call("load")
}

// LoadString executes the given chunk, then calls `lav.load` if the chunk
// defined one.
func (r *Runtime) LoadString(src string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.state.DoString(src); err != nil {
		return fmt.Errorf("script: load chunk: %w", err)
	}
	return r.call("load")
}

// Draw runs the script's `lav.draw` callback for one frame. A script
// without a draw callback is not an error.
func (r *Runtime) Draw() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	return r.call("draw")
}

// Do runs fn against the engine under the runtime's lock. Window-event
// handlers (resize, close) use this so their engine calls serialize with
// script callbacks.
func (r *Runtime) Do(fn func(*lav.Graphics)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	fn(r.graphics)
}

// Timer returns the frame timer bound into the Lua state.
func (r *Runtime) Timer() *lav.Timer {
	return r.timer
}

// Close shuts the Lua state down. The Runtime must not be used after
// Close. Safe to call multiple times.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.state.Close()
}

// call invokes the named callback on the lav table when it is defined.
// Mirrors optional callback dispatch: a missing callback is a no-op.
func (r *Runtime) call(name string) error {
	root := r.state.GetGlobal("lav")
	if root == lua.LNil {
		return nil
	}
	fn := r.state.GetField(root, name)
	lfn, ok := fn.(*lua.LFunction)
	if !ok {
		return nil
	}
	if err := r.state.CallByParam(lua.P{Fn: lfn, NRet: 0, Protect: true}); err != nil {
		return fmt.Errorf("script: lav.%s: %w", name, err)
	}
	return nil
}
