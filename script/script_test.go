// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"testing"

	"github.com/gogpu/lav"
)

// recordingBackend captures every call made through the lav.Backend contract.
type recordingBackend struct {
	presents    [][]lav.DrawCommand
	clearColors []lav.RGBA
	recreations int
}

func (b *recordingBackend) RequestSwapchainRecreation() { b.recreations++ }
func (b *recordingBackend) SetClearColor(c lav.RGBA)    { b.clearColors = append(b.clearColors, c) }
func (b *recordingBackend) Present(commands []lav.DrawCommand) {
	b.presents = append(b.presents, commands)
}

func newTestRuntime() (*Runtime, *recordingBackend) {
	backend := &recordingBackend{}
	return New(lav.New(backend)), backend
}

func TestGraphicsBindingsMatchGoCalls(t *testing.T) {
	r, backend := newTestRuntime()
	defer r.Close()

	err := r.LoadString(`
		lav.graphics.setColor(1, 0, 0, 1)
		lav.graphics.rectangle(0, 0, 10, 10)
		lav.graphics.rectangle(20, 20, 5, 5)
		lav.graphics.present()
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if len(backend.presents) != 1 {
		t.Fatalf("presents = %d, want 1", len(backend.presents))
	}
	cmds := backend.presents[0]
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	if len(cmds[0].Vertices) != 8 || len(cmds[0].Indices) != 12 {
		t.Errorf("command = %d verts / %d indices, want 8 / 12",
			len(cmds[0].Vertices), len(cmds[0].Indices))
	}
	if cmds[0].Push.Color != [4]float32{1, 0, 0, 1} {
		t.Errorf("color = %v, want red", cmds[0].Push.Color)
	}
}

func TestTransformBindings(t *testing.T) {
	r, backend := newTestRuntime()
	defer r.Close()

	err := r.LoadString(`
		lav.graphics.translate(5, 0)
		lav.graphics.rectangle(0, 0, 1, 1)
		lav.graphics.origin()
		lav.graphics.rectangle(0, 0, 1, 1)
		lav.graphics.present()
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	cmds := backend.presents[0]
	if len(cmds) != 2 {
		t.Fatalf("commands = %d, want 2", len(cmds))
	}
	if got := cmds[0].Push.Transform.Transposed(); got != lav.Translation(5, 0, 0) {
		t.Errorf("first transform = %v, want translation(5,0,0)", got)
	}
	if got := cmds[1].Push.Transform.Transposed(); got != lav.Identity() {
		t.Errorf("second transform = %v, want identity", got)
	}
}

func TestPassthroughBindings(t *testing.T) {
	r, backend := newTestRuntime()
	defer r.Close()

	err := r.LoadString(`
		lav.graphics.setClearColor(0.1, 0.2, 0.3, 1)
		lav.graphics.requestSwapchainRecreation()
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if backend.recreations != 1 {
		t.Errorf("recreations = %d, want 1", backend.recreations)
	}
	want := lav.RGBA4(0.1, 0.2, 0.3, 1)
	if len(backend.clearColors) != 1 || backend.clearColors[0] != want {
		t.Errorf("clear colors = %v, want [%v]", backend.clearColors, want)
	}
}

func TestLoadCallbackRunsOnce(t *testing.T) {
	r, backend := newTestRuntime()
	defer r.Close()

	err := r.LoadString(`
		lav.load = function()
			lav.graphics.rectangle(0, 0, 1, 1)
			lav.graphics.present()
		end
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if len(backend.presents) != 1 {
		t.Errorf("presents after load = %d, want 1", len(backend.presents))
	}
}

func TestDrawCallbackRunsPerFrame(t *testing.T) {
	r, backend := newTestRuntime()
	defer r.Close()

	err := r.LoadString(`
		frame = 0
		lav.draw = function()
			frame = frame + 1
			lav.graphics.rectangle(frame, 0, 1, 1)
			lav.graphics.present()
		end
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := r.Draw(); err != nil {
			t.Fatalf("Draw() #%d error = %v", i, err)
		}
	}
	if len(backend.presents) != 3 {
		t.Errorf("presents = %d, want 3", len(backend.presents))
	}
}

func TestMissingCallbacksAreNotErrors(t *testing.T) {
	r, _ := newTestRuntime()
	defer r.Close()

	if err := r.LoadString(`x = 1`); err != nil {
		t.Errorf("LoadString without lav.load returned %v", err)
	}
	if err := r.Draw(); err != nil {
		t.Errorf("Draw without lav.draw returned %v", err)
	}
}

func TestLuaErrorPropagates(t *testing.T) {
	r, _ := newTestRuntime()
	defer r.Close()

	if err := r.LoadString(`error("boom")`); err == nil {
		t.Error("LoadString() with runtime error returned nil")
	}
}

func TestTimerBindings(t *testing.T) {
	r, _ := newTestRuntime()
	defer r.Close()

	err := r.LoadString(`
		fpsBefore = lav.timer.getFPS()
		lav.timer.step()
		delta = lav.timer.getDelta()
		time = lav.timer.getTime()
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if got := r.Timer().Delta(); got < 0 {
		t.Errorf("Delta() = %v, want >= 0", got)
	}
}

func TestDoSerializesHostCalls(t *testing.T) {
	r, backend := newTestRuntime()
	defer r.Close()

	r.Do(func(g *lav.Graphics) {
		g.RequestSwapchainRecreation()
	})
	if backend.recreations != 1 {
		t.Errorf("recreations = %d, want 1", backend.recreations)
	}
}

func TestClosedRuntime(t *testing.T) {
	r, _ := newTestRuntime()
	r.Close()
	r.Close() // idempotent

	if err := r.Draw(); err != ErrClosed {
		t.Errorf("Draw() after Close = %v, want ErrClosed", err)
	}
	if err := r.LoadString(`x = 1`); err != ErrClosed {
		t.Errorf("LoadString() after Close = %v, want ErrClosed", err)
	}
}
