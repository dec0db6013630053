// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/lav"
)

// targetTextures holds the offscreen color target the backend renders into.
type targetTextures struct {
	color  hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
}

// ensure creates or recreates the color target at the requested extent.
// No-op when the extent matches and the target exists.
func (t *targetTextures) ensure(device hal.Device, w, h uint32) error {
	if t.width == w && t.height == h && t.color != nil {
		return nil
	}
	t.destroy(device)

	color, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "lav_color_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color target: %w", err)
	}
	t.color = color

	view, err := device.CreateTextureView(color, &hal.TextureViewDescriptor{
		Label: "lav_color_target_view",
	})
	if err != nil {
		t.destroy(device)
		return fmt.Errorf("create color target view: %w", err)
	}
	t.view = view
	t.width = w
	t.height = h
	return nil
}

func (t *targetTextures) destroy(device hal.Device) {
	if t.view != nil {
		device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.color != nil {
		device.DestroyTexture(t.color)
		t.color = nil
	}
	t.width = 0
	t.height = 0
}

// frameBuffers holds the per-command GPU buffers of one frame.
type frameBuffers struct {
	vertex  []hal.Buffer
	index   []hal.Buffer
	uniform []hal.Buffer
	binds   []hal.BindGroup
}

func (f *frameBuffers) destroy(device hal.Device) {
	for _, bg := range f.binds {
		device.DestroyBindGroup(bg)
	}
	for _, buf := range f.uniform {
		device.DestroyBuffer(buf)
	}
	for _, buf := range f.index {
		device.DestroyBuffer(buf)
	}
	for _, buf := range f.vertex {
		device.DestroyBuffer(buf)
	}
}

// Present renders the committed draw commands in submission order into the
// frame's render target, clears with the stored clear color first, submits,
// and drains the device before returning.
//
// Transient conditions never surface to the engine: a pending recreation
// with a zero extent, or any encoding or submission error, logs a warning,
// re-requests recreation where that can help, and skips the frame.
func (b *Backend) Present(commands []lav.DrawCommand) {
	if b.closed || b.device == nil {
		return
	}

	view, err := b.acquireView()
	if err != nil {
		lav.Logger().Warn("skipping frame", "reason", err)
		return
	}
	if view == nil {
		// Mid-resize; the recreation flag stays set, retry next present.
		lav.Logger().Warn("skipping frame", "reason", "zero extent")
		return
	}

	if err := b.renderFrame(view, commands); err != nil {
		lav.Logger().Warn("skipping frame", "reason", err)
		if targetStale(err) {
			b.recreate = true
		}
	}
}

// targetStale reports whether a frame failure invalidated the GPU objects
// themselves. Only then does recreating the target help; plain encoding or
// allocation failures retry against the existing target.
func targetStale(err error) bool {
	return errors.Is(err, hal.ErrDeviceLost)
}

// acquireView picks the frame's render destination: the externally supplied
// surface view when one is set, otherwise the backend's own offscreen
// target, (re)created on demand. Returns nil with no error when the extent
// is zero and the frame must be skipped.
func (b *Backend) acquireView() (hal.TextureView, error) {
	if b.frameView != nil {
		// The windowing layer owns surface recreation in this mode.
		b.recreate = false
		return b.frameView, nil
	}
	if b.recreate {
		if b.width == 0 || b.height == 0 {
			return nil, nil
		}
		if err := b.target.ensure(b.device, b.width, b.height); err != nil {
			return nil, err
		}
		b.recreate = false
	}
	return b.target.view, nil
}

// renderFrame encodes and submits one frame into the given target view.
func (b *Backend) renderFrame(view hal.TextureView, commands []lav.DrawCommand) error {
	frame, err := b.buildFrameBuffers(commands)
	if err != nil {
		frame.destroy(b.device)
		return err
	}
	defer frame.destroy(b.device)

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "lav_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("lav_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "lav_batch_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: b.clearColor.R,
				G: b.clearColor.G,
				B: b.clearColor.B,
				A: b.clearColor.A,
			},
		}},
	})

	rp.SetPipeline(b.pipeline.pipeline)
	for i, cmd := range commands {
		rp.SetBindGroup(0, frame.binds[i], nil)
		rp.SetVertexBuffer(0, frame.vertex[i], 0)
		rp.SetIndexBuffer(frame.index[i], gputypes.IndexFormatUint32, 0)
		rp.DrawIndexed(uint32(len(cmd.Indices)), 1, 0, 0, 0)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	if _, err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	// Present is synchronous: drain the device so the per-frame buffers can
	// be destroyed as soon as this returns.
	if err := b.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	return nil
}

// buildFrameBuffers uploads vertex, index, and uniform data for every
// command of the frame and builds the matching bind groups.
func (b *Backend) buildFrameBuffers(commands []lav.DrawCommand) (frameBuffers, error) {
	var frame frameBuffers
	for i := range commands {
		cmd := &commands[i]

		vertBuf, err := b.createAndUploadBuffer("lav_batch_verts", packVertices(cmd.Vertices),
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return frame, err
		}
		frame.vertex = append(frame.vertex, vertBuf)

		idxBuf, err := b.createAndUploadBuffer("lav_batch_indices", packIndices(cmd.Indices),
			gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return frame, err
		}
		frame.index = append(frame.index, idxBuf)

		uniformBuf, err := b.createAndUploadBuffer("lav_batch_uniform", packPushValues(cmd.Push),
			gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
		if err != nil {
			return frame, err
		}
		frame.uniform = append(frame.uniform, uniformBuf)

		bindGroup, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  "lav_batch_bind",
			Layout: b.pipeline.uniformLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{
					Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: pushValuesSize,
				}},
			},
		})
		if err != nil {
			return frame, fmt.Errorf("create bind group: %w", err)
		}
		frame.binds = append(frame.binds, bindGroup)
	}
	return frame, nil
}

func (b *Backend) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	b.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
