// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

// Option configures a Backend during creation.
type Option func(*backendOptions)

// backendOptions holds optional configuration for Backend creation.
type backendOptions struct {
	width    uint32
	height   uint32
	provider any
}

// defaultOptions returns the default backend options.
func defaultOptions() backendOptions {
	return backendOptions{
		width:  800,
		height: 600,
	}
}

// WithSize sets the initial render target extent in pixels.
func WithSize(width, height int) Option {
	return func(o *backendOptions) {
		o.width = clampExtent(width)
		o.height = clampExtent(height)
	}
}

// WithDeviceProvider shares the GPU device of an external provider (for
// example a gogpu app) instead of creating a dedicated one. The provider
// must expose HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue, as gpucontext.DeviceProvider implementations backed by the
// Pure Go wgpu do.
func WithDeviceProvider(provider any) Option {
	return func(o *backendOptions) {
		o.provider = provider
	}
}
