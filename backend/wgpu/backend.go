// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/lav"
)

// Backend renders lav draw commands through gogpu/wgpu. It implements
// lav.Backend.
//
// All GPU resources are owned exclusively by the backend; the engine never
// sees a handle. Present is fully synchronous: after submission the device
// is drained before the call returns, so every call is blocking and
// ordered from the engine's perspective.
type Backend struct {
	// GPU resources
	instance  hal.Instance // nil in shared-device mode
	device    hal.Device
	queue     hal.Queue
	ownDevice bool

	pipeline *batchPipeline
	target   targetTextures

	// frameView, when set, replaces the offscreen target as the render
	// destination. The windowed demo points it at the current surface view
	// each frame.
	frameView hal.TextureView

	// Presentation state
	clearColor    lav.RGBA
	recreate      bool
	width, height uint32

	closed bool
}

// Compile-time interface check.
var _ lav.Backend = (*Backend)(nil)

// New creates a wgpu backend. Without options it creates its own Vulkan
// device sized to the default extent; use WithDeviceProvider to share the
// device of a windowing layer and WithSize to set the initial extent.
func New(opts ...Option) (*Backend, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	b := &Backend{
		width:    options.width,
		height:   options.height,
		recreate: true, // target textures are created lazily on first present
	}

	var err error
	if options.provider != nil {
		err = b.initShared(options.provider)
	} else {
		err = b.initOwnDevice()
	}
	if err != nil {
		return nil, err
	}

	b.pipeline = newBatchPipeline(b.device, b.queue)
	if err := b.pipeline.create(); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

// RequestSwapchainRecreation marks the render target stale. The target is
// recreated lazily on the next present.
func (b *Backend) RequestSwapchainRecreation() {
	b.recreate = true
}

// Resize records a new surface extent alongside a recreation request.
// A zero extent is recorded as-is; Present skips frames until a valid
// extent arrives.
func (b *Backend) Resize(width, height int) {
	b.width = clampExtent(width)
	b.height = clampExtent(height)
	b.recreate = true
}

// SetClearColor updates the background clear value used on the next present.
func (b *Backend) SetClearColor(c lav.RGBA) {
	b.clearColor = c
}

// Size returns the current render target extent in pixels.
func (b *Backend) Size() (width, height int) {
	return int(b.width), int(b.height)
}

// RenderTo directs subsequent presents into the given texture view instead
// of the backend's own offscreen target. A windowing layer passes the
// current frame's surface view here before each draw; the view must match
// the pipeline's color format. Pass nil to return to offscreen rendering.
//
// The supplied view is borrowed for the frame, never destroyed by the
// backend, and must stay valid until Present returns.
func (b *Backend) RenderTo(view hal.TextureView) {
	b.frameView = view
}

// Texture returns the color target holding the last presented frame, for
// an embedding to blit into its window surface. Nil before the first
// successful present.
func (b *Backend) Texture() hal.Texture {
	return b.target.color
}

// TextureView returns the view of the color target, or nil before the
// first successful present.
func (b *Backend) TextureView() hal.TextureView {
	return b.target.view
}

// Close releases all GPU resources. The backend must not be used after
// Close. Safe to call multiple times.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true

	if b.pipeline != nil {
		b.pipeline.destroy()
		b.pipeline = nil
	}
	if b.device != nil {
		b.target.destroy(b.device)
	}
	if b.ownDevice && b.device != nil {
		b.device.Destroy()
	}
	b.device = nil
	b.queue = nil
	b.instance = nil
}

func clampExtent(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
