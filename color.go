package lav

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is intended to lie in [0, 1]. No normalization is
// enforced; out-of-range values pass through to the backend unchanged.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA4 creates a color from RGBA components.
func RGBA4(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// vec4 returns the color as four float32 components in shader uniform order.
func (c RGBA) vec4() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}
