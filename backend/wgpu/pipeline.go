// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/lav"
)

//go:embed shaders/batch.wgsl
var batchShaderSource string

// vertexStride is the byte stride per vertex: 2 x float32 (x, y) = 8 bytes.
const vertexStride = 8

// pushValuesSize is the byte size of the uniform block mirroring
// lav.PushValues: projection mat4 (64) + transform mat4 (64) + color vec4
// (16) = 144 bytes.
const pushValuesSize = 144

// targetFormat is the color target format. BGRA8Unorm matches the common
// swapchain format so an embedding can blit without conversion.
const targetFormat = gputypes.TextureFormatBGRA8Unorm

// batchPipeline holds the render pipeline drawing one batch per DrawIndexed
// call: position-only vertices against a per-command uniform block.
type batchPipeline struct {
	device hal.Device
	queue  hal.Queue

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
}

func newBatchPipeline(device hal.Device, queue hal.Queue) *batchPipeline {
	return &batchPipeline{device: device, queue: queue}
}

// create compiles the batch shader through naga and builds the pipeline:
// triangle list, no culling, premultiplied-alpha blend, single sample.
func (p *batchPipeline) create() error {
	spirvBytes, err := naga.Compile(batchShaderSource)
	if err != nil {
		return fmt.Errorf("compile batch shader: %w", err)
	}
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "lav_batch_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create batch shader module: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "lav_batch_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: pushValuesSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "lav_batch_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "lav_batch_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    targetFormat,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create batch pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// destroy releases all pipeline resources in reverse creation order.
// Safe to call on a partially created pipeline.
func (p *batchPipeline) destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// packVertices serializes vertices as little-endian float32 pairs.
func packVertices(vertices []lav.Vertex) []byte {
	data := make([]byte, len(vertices)*vertexStride)
	for i, v := range vertices {
		binary.LittleEndian.PutUint32(data[i*8:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(data[i*8+4:], math.Float32bits(v[1]))
	}
	return data
}

// packIndices serializes indices as little-endian uint32.
func packIndices(indices []uint32) []byte {
	data := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(data[i*4:], idx)
	}
	return data
}

// packPushValues serializes a PushValues snapshot into the 144-byte uniform
// layout: projection, transform, color, each in declaration order. The
// matrices arrive already transposed for the shader's column-major layout,
// so elements are written in storage order.
func packPushValues(push lav.PushValues) []byte {
	data := make([]byte, pushValuesSize)
	off := 0
	for _, f := range push.Projection {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range push.Transform {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range push.Color {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(f))
		off += 4
	}
	return data
}
