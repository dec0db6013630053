// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/lav"
)

// initOwnDevice creates a dedicated HAL instance, adapter, and device.
// Discrete and integrated GPUs are preferred over software adapters.
func (b *Backend) initOwnDevice() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return ErrNoGPUBackend
	}

	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("%w: create instance: %w", ErrNoGPUBackend, err)
	}
	b.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return ErrNoAdapter
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.ownDevice = true

	lav.Logger().Info("wgpu backend initialized", "adapter", selected.Info.Name)
	return nil
}

// initShared adopts the HAL device and queue of an external provider.
// The provider is duck-typed rather than referenced by interface so any
// gpucontext.DeviceProvider backed by the Pure Go wgpu qualifies.
func (b *Backend) initShared(provider any) error {
	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return ErrInvalidProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("%w: HalDevice is not hal.Device", ErrInvalidProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("%w: HalQueue is not hal.Queue", ErrInvalidProvider)
	}

	b.device = device
	b.queue = queue
	b.ownDevice = false

	lav.Logger().Info("wgpu backend initialized", "device", "shared")
	return nil
}
