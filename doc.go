// Package lav provides a backend-agnostic, immediate-mode 2D drawing engine
// for scripted per-frame update/draw loops.
//
// # Overview
//
// lav sits between a frame script (typically Lua, see the script package)
// and a GPU backend. Callers issue primitive drawing and state-change
// operations — draw a rectangle, change the color, translate or rotate the
// coordinate frame, present the frame — without knowing which GPU API
// renders them. Consecutive primitives that share rendering state are
// batched into single draw commands to minimize GPU submissions.
//
// # Quick Start
//
//	import "github.com/gogpu/lav"
//
//	g := lav.New(backend) // any lav.Backend implementation
//
//	g.SetColor(lav.RGB(1, 0, 0))
//	g.Rectangle(10, 10, 100, 50)
//	g.Translate(200, 0)
//	g.Rectangle(0, 0, 100, 50)
//	g.Present()
//
// # Batching Model
//
// Geometry calls append vertices and indices to a pending batch. Any
// state-changing call (SetColor, Translate, Rotate, Origin) first seals the
// pending batch into an immutable DrawCommand that captures the state the
// geometry was queued under, then mutates the live state. Present seals the
// last batch and hands the full ordered command list to the backend.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Graphics, Backend, DrawCommand, Mat4, RGBA, Vertex, Timer
//   - backend/wgpu: GPU backend on gogpu/wgpu
//   - script: Lua embedding of the engine surface
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Transform composition follows the already-transformed-frame convention:
// rotating after translating rotates around the translated origin, not the
// world origin.
//
// # Concurrency
//
// Graphics performs no internal locking; every operation assumes exclusive
// access for its duration. When script callbacks and window events can call
// in from different goroutines, the embedding layer serializes access with
// a single mutex (the script package does this).
package lav

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
