// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/lav"
)

// The submission path the backend relies on: Submit returns an index and
// synchronization is WaitIdle. Pinned at compile time so a hal upgrade that
// changes either shape fails here first.
var (
	_ func(hal.Queue, []hal.CommandBuffer) (uint64, error) = hal.Queue.Submit
	_ func(hal.Device) error                               = hal.Device.WaitIdle
)

// stubView satisfies hal.TextureView without a device, standing in for a
// windowing layer's surface view.
type stubView struct{}

func (stubView) Destroy()              {}
func (stubView) NativeHandle() uintptr { return 1 }

func TestOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantWidth  uint32
		wantHeight uint32
	}{
		{"defaults", nil, 800, 600},
		{"explicit size", []Option{WithSize(1024, 768)}, 1024, 768},
		{"negative size clamps to zero", []Option{WithSize(-5, -5)}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.width != tt.wantWidth || o.height != tt.wantHeight {
				t.Errorf("extent = %dx%d, want %dx%d", o.width, o.height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestResizeSetsRecreation(t *testing.T) {
	b := &Backend{width: 800, height: 600}
	b.recreate = false

	b.Resize(640, 480)
	if !b.recreate {
		t.Error("Resize did not request recreation")
	}
	if b.width != 640 || b.height != 480 {
		t.Errorf("extent = %dx%d, want 640x480", b.width, b.height)
	}
}

func TestSetClearColorStoresValue(t *testing.T) {
	b := &Backend{}
	c := lav.RGBA4(0.25, 0.5, 0.75, 1)
	b.SetClearColor(c)
	if b.clearColor != c {
		t.Errorf("clearColor = %v, want %v", b.clearColor, c)
	}
}

func TestPresentWithoutDeviceIsNoop(t *testing.T) {
	// A backend without a device (failed init) must never panic or clear
	// its pending recreation request.
	b := &Backend{recreate: true}

	b.Present([]lav.DrawCommand{{}})
	if !b.recreate {
		t.Error("recreation flag cleared on skipped frame")
	}
}

func TestPresentAfterCloseIsNoop(t *testing.T) {
	b := &Backend{closed: true}
	b.Present(nil) // must not panic
}

func TestRenderToSelectsSurfaceView(t *testing.T) {
	// An externally supplied view wins over the offscreen target and
	// absorbs any pending recreation, since the windowing layer owns
	// surface recreation in that mode.
	b := &Backend{recreate: true}
	view := stubView{}

	b.RenderTo(view)
	got, err := b.acquireView()
	if err != nil {
		t.Fatalf("acquireView: %v", err)
	}
	if got != view {
		t.Errorf("acquireView = %v, want the supplied surface view", got)
	}
	if b.recreate {
		t.Error("recreation flag survived external-view acquisition")
	}
}

func TestAcquireViewZeroExtentSkipsFrame(t *testing.T) {
	b := &Backend{recreate: true}

	got, err := b.acquireView()
	if err != nil {
		t.Fatalf("acquireView: %v", err)
	}
	if got != nil {
		t.Errorf("acquireView = %v, want nil at zero extent", got)
	}
	if !b.recreate {
		t.Error("recreation flag cleared on skipped frame")
	}

	// Returning to offscreen mode after a borrowed view behaves the same.
	b.RenderTo(stubView{})
	b.RenderTo(nil)
	b.recreate = true
	if got, _ := b.acquireView(); got != nil {
		t.Errorf("acquireView after RenderTo(nil) = %v, want nil at zero extent", got)
	}
}

func TestTargetAccessorsNilBeforeFirstPresent(t *testing.T) {
	b := &Backend{}
	if b.Texture() != nil {
		t.Error("Texture() non-nil before first present")
	}
	if b.TextureView() != nil {
		t.Error("TextureView() non-nil before first present")
	}
}

func TestTargetStale(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"device lost", hal.ErrDeviceLost, true},
		{"wrapped device lost", fmt.Errorf("submit: %w", hal.ErrDeviceLost), true},
		{"allocation failure", errors.New("create lav_batch_verts: out of memory"), false},
		{"encoding failure", errors.New("begin encoding: bad state"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetStale(tt.err); got != tt.want {
				t.Errorf("targetStale(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestInitSharedRejectsBadProvider(t *testing.T) {
	b := &Backend{}
	if err := b.initShared(struct{}{}); err == nil {
		t.Error("initShared accepted a provider without HAL handles")
	}
}
