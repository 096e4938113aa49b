package mat_test

import (
	"testing"

	"github.com/katalvlaran/geomkit/mat"
	"github.com/stretchr/testify/assert"
)

// TestMat3_Det_Identity verifies det(I) = 1.
func TestMat3_Det_Identity(t *testing.T) {
	m := mat.Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	assert.Equal(t, 1.0, m.Det(), "identity determinant is 1")
}

// TestMat3_Det_Known checks a hand-computed 3×3 determinant.
func TestMat3_Det_Known(t *testing.T) {
	m := mat.Mat3{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 1},
	}
	// 2*(3-2) - 0*(1-2) + 1*(1-3) = 0
	assert.Equal(t, 0.0, m.Det(), "singular matrix determinant is 0")

	m[2] = [3]float64{0, 1, 4}
	// 2*(12-2) - 0 + 1*(1-0) = 21
	assert.Equal(t, 21.0, m.Det(), "hand-computed determinant")
}

// TestMat4_Det_Identity verifies det(I) = 1.
func TestMat4_Det_Identity(t *testing.T) {
	var m mat.Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	assert.Equal(t, 1.0, m.Det(), "identity determinant is 1")
}

// TestMat4_Det_Triangular checks that an upper-triangular determinant is the
// product of the diagonal.
func TestMat4_Det_Triangular(t *testing.T) {
	m := mat.Mat4{
		{2, 7, 1, 5},
		{0, 3, 9, 2},
		{0, 0, 4, 8},
		{0, 0, 0, 5},
	}
	assert.Equal(t, 120.0, m.Det(), "triangular determinant is the diagonal product")
}

// TestMat4_Det_RowSwapFlipsSign verifies the alternating property: swapping
// two rows negates the determinant.
func TestMat4_Det_RowSwapFlipsSign(t *testing.T) {
	m := mat.Mat4{
		{1, 2, 3, 4},
		{0, 1, 4, 2},
		{3, 1, 0, 5},
		{2, 0, 1, 1},
	}
	swapped := m
	swapped[0], swapped[2] = swapped[2], swapped[0]

	assert.Equal(t, -m.Det(), swapped.Det(), "row swap flips the determinant sign")
}

// TestMat4_Det_DuplicateRowIsZero verifies a repeated row forces a zero
// determinant, the degeneracy signal the circumsphere solver relies on.
func TestMat4_Det_DuplicateRowIsZero(t *testing.T) {
	m := mat.Mat4{
		{1, 2, 3, 1},
		{4, 5, 6, 1},
		{1, 2, 3, 1},
		{7, 8, 9, 1},
	}
	assert.Equal(t, 0.0, m.Det(), "duplicate rows give zero determinant")
}
