// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu provides a GPU backend for lav using gogpu/wgpu.
//
// The backend owns all GPU resources (device, queue, pipeline, target
// textures) and realizes the lav.Backend contract: it consumes committed
// draw commands at present time and renders them either into a surface
// view handed over with RenderTo or, by default, into an offscreen color
// target that an embedding can read back.
//
// Two device modes are supported:
//
//	// Own device: the backend creates its own Vulkan instance and device.
//	b, err := wgpu.New(wgpu.WithSize(800, 600))
//
//	// Shared device: reuse the GPU device of a windowing layer such as
//	// gogpu, passed as a gpucontext.DeviceProvider.
//	b, err := wgpu.New(wgpu.WithDeviceProvider(app.GPUContextProvider()))
//
// Presentation failures are transient: a zero or stale extent
// makes Present silently skip the frame and leave the recreation flag set,
// so the next present retries. No error ever propagates to the engine.
package wgpu
