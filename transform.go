package lav

// transformRegister holds the single current coordinate-frame transform.
// Historically this kind of state is called a transform "stack", but no
// nested save/restore is ever exposed: the only observable operations are
// reset-to-identity and compose. Modeling it as scalar state makes an
// empty register structurally impossible.
type transformRegister struct {
	current Mat4
}

func newTransformRegister() transformRegister {
	return transformRegister{current: Identity()}
}

// reset sets the current transform back to identity.
func (t *transformRegister) reset() {
	t.current = Identity()
}

// compose layers op onto the existing frame: current = current * op.
// The current transform is applied on the left, so op is interpreted in
// the already-transformed coordinate frame. Reversing the order changes
// visual behavior.
func (t *transformRegister) compose(op Mat4) {
	t.current = t.current.Multiply(op)
}
