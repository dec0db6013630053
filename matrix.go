package lav

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 transformation matrix with 16 float32 elements in
// row-major storage: element (i, j) lives at index i*4+j.
//
// The engine only ever builds 2D transforms (rotation in the top-left 2x2
// block, translation in the last column), but the full 4x4 form is kept
// because it matches the shader uniform layout one-to-one.
type Mat4 f32.Mat4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotation creates a 2D rotation matrix (angle in radians). The rotation
// occupies the top-left 2x2 block; the rest is identity.
func Rotation(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	c := float32(cos)
	s := float32(sin)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix with x, y, z in the last
// column of the first three rows.
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, float32(x),
		0, 1, 0, float32(y),
		0, 0, 1, float32(z),
		0, 0, 0, 1,
	}
}

// Multiply multiplies two matrices (m * other). Matrix multiplication is
// not commutative; the receiver is applied on the left.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i*4+k] * other[k*4+j]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Transposed returns the transpose of the matrix, swapping element (i, j)
// with (j, i). Used at the flush boundary because the shader uniform
// layout is column-major while Mat4 is maintained row-major.
func (m Mat4) Transposed() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[j*4+i] = m[i*4+j]
		}
	}
	return out
}
