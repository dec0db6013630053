package lav

import "golang.org/x/image/math/f32"

// Vertex is a single 2D position in the coordinate frame that was current
// when the vertex was queued.
type Vertex = f32.Vec2

// PushValues is the per-command rendering state snapshot taken at flush
// time. It mirrors the shader uniform block: projection, transform, color.
//
// Projection is always identity in the engine; actual projection is a
// backend concern. Transform is stored transposed (column-major) so the
// backend can upload it to the GPU without rearranging.
type PushValues struct {
	Projection Mat4
	Transform  Mat4
	Color      [4]float32
}

// DrawCommand is an immutable, self-contained unit of geometry plus the
// rendering state it was drawn under. Indices form a triangle list
// (3 indices per triangle) referencing only vertices of the same command.
//
// Once committed by a flush, a command is a frozen copy: later mutation of
// the live transform or color never affects it.
type DrawCommand struct {
	Vertices []Vertex
	Indices  []uint32
	Push     PushValues
}
