// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import "errors"

// Package errors for the wgpu backend.
var (
	// ErrNoGPUBackend is returned when no wgpu HAL backend is available.
	ErrNoGPUBackend = errors.New("wgpu: no GPU backend available")

	// ErrNoAdapter is returned when no GPU adapter is found.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")

	// ErrDeviceCreationFailed is returned when opening the device fails.
	ErrDeviceCreationFailed = errors.New("wgpu: device creation failed")

	// ErrInvalidProvider is returned when a device provider does not expose
	// HAL device and queue handles.
	ErrInvalidProvider = errors.New("wgpu: provider does not expose a HAL device")

	// ErrClosed is returned when operations are called after Close.
	ErrClosed = errors.New("wgpu: backend closed")
)
