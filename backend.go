package lav

// Backend is the contract between the engine and a GPU implementation.
// Exactly one implementation is active per process, selected at startup;
// the engine holds no GPU handle itself, so it can be exercised and tested
// without any GPU present.
//
// A Backend owns all GPU resources (device, surface, swapchain, pipeline,
// command buffers) exclusively. Submission inside an implementation may be
// internally asynchronous, but must resolve to a synchronous result before
// Present returns, so that from the engine's perspective every call is
// blocking and ordered.
type Backend interface {
	// RequestSwapchainRecreation marks that the presentation surface must
	// be resized or recreated before or during the next present. The
	// backend decides the timing.
	RequestSwapchainRecreation()

	// SetClearColor updates the background clear value used on the next
	// present.
	SetClearColor(c RGBA)

	// Present consumes draw commands in submission order, executes
	// whatever GPU work is necessary to render and display them, and
	// returns. An implementation may detect a stale or invalid surface
	// and silently skip the frame (re-requesting recreation) rather than
	// fail loudly; Present never reports partial application of the
	// command list back to the caller.
	Present(commands []DrawCommand)
}
