package lav

import "log/slog"

// Graphics is the draw-batching and transform-state engine. It accumulates
// pending geometry, seals it into committed draw commands whenever the
// rendering state is about to change, and hands the committed list to the
// backend at present time.
//
// A Graphics is constructed once per backend instance and lives for the
// process's rendering lifetime. Pending and committed buffers are transient
// per frame; the current transform and color persist across frames unless
// explicitly reset.
//
// Graphics is not safe for concurrent use. Callers that can invoke it from
// more than one goroutine must serialize all access with a single lock
// scoped to the whole instance (see the script package).
type Graphics struct {
	backend Backend

	// Pending batch: geometry queued since the last flush, all sharing
	// the current transform and color. Cleared together.
	vertices []Vertex
	indices  []uint32

	// Committed commands, append-only until Present drains them.
	commands []DrawCommand

	color     RGBA
	transform transformRegister
}

// New creates a Graphics engine driving the given backend.
func New(backend Backend) *Graphics {
	return &Graphics{
		backend:   backend,
		color:     RGBA{R: 1, G: 1, B: 1, A: 1},
		transform: newTransformRegister(),
	}
}

// Rectangle queues an axis-aligned rectangle: 4 vertices at (x,y), (x,y+h),
// (x+w,y), (x+w,y+h) and 6 indices forming two triangles. Pure append; it
// never flushes. Zero or negative sizes are accepted and produce
// zero-area or mirrored geometry, not an error.
func (g *Graphics) Rectangle(x, y, w, h float64) {
	s := uint32(len(g.vertices))
	g.vertices = append(g.vertices,
		Vertex{float32(x), float32(y)},
		Vertex{float32(x), float32(y + h)},
		Vertex{float32(x + w), float32(y)},
		Vertex{float32(x + w), float32(y + h)},
	)
	g.indices = append(g.indices, s, s+1, s+2, s+2, s+1, s+3)
}

// SetColor flushes the pending batch under the old color, then sets the
// current color.
func (g *Graphics) SetColor(c RGBA) {
	g.Flush()
	g.color = c
}

// Translate flushes the pending batch under the old transform, then
// composes a translation onto the current frame.
func (g *Graphics) Translate(x, y float64) {
	g.Flush()
	g.transform.compose(Translation(x, y, 0))
}

// Rotate flushes the pending batch under the old transform, then composes
// a rotation (radians) onto the current frame. The rotation happens around
// the current frame's origin, so rotating after translating rotates around
// the translated origin.
func (g *Graphics) Rotate(angle float64) {
	g.Flush()
	g.transform.compose(Rotation(angle))
}

// Origin flushes the pending batch, then resets the transform to identity
// regardless of prior translate/rotate history.
func (g *Graphics) Origin() {
	g.Flush()
	g.transform.reset()
}

// Flush seals the pending batch into a committed draw command and starts a
// new empty batch. A flush with zero pending vertices is a no-op; it never
// appends an empty command.
//
// The command receives genuine copies of the geometry and a snapshot of
// the transform (transposed for the shader's column-major uniform layout)
// and color, so later state mutation cannot reach committed commands.
func (g *Graphics) Flush() {
	if len(g.vertices) == 0 {
		return
	}

	vertices := make([]Vertex, len(g.vertices))
	copy(vertices, g.vertices)
	indices := make([]uint32, len(g.indices))
	copy(indices, g.indices)

	g.commands = append(g.commands, DrawCommand{
		Vertices: vertices,
		Indices:  indices,
		Push: PushValues{
			Projection: Identity(),
			Transform:  g.transform.current.Transposed(),
			Color:      g.color.vec4(),
		},
	})

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
}

// Present seals the remaining pending batch, hands the entire committed
// command list to the backend in submission order, and clears it. A
// present with nothing drawn hands the backend an empty list. The backend
// alone decides the GPU submission outcome; nothing is reported back.
func (g *Graphics) Present() {
	g.Flush()

	commands := g.commands
	g.commands = nil

	Logger().Debug("present", slog.Int("commands", len(commands)))
	g.backend.Present(commands)
}

// RequestSwapchainRecreation forwards to the backend. The engine keeps no
// bookkeeping beyond the call.
func (g *Graphics) RequestSwapchainRecreation() {
	g.backend.RequestSwapchainRecreation()
}

// SetClearColor forwards the background clear value to the backend.
func (g *Graphics) SetClearColor(c RGBA) {
	g.backend.SetClearColor(c)
}
