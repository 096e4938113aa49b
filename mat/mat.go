package mat

// Mat3 is a 3×3 matrix of float64 in row-major order: m[i][j] is row i,
// column j.
type Mat3 [3][3]float64

// Mat4 is a 4×4 matrix of float64 in row-major order: m[i][j] is row i,
// column j.
type Mat4 [4][4]float64

// Det returns the determinant of the 3×3 matrix via cofactor expansion
// along the first row. Complexity: O(1), no allocation.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Det returns the determinant of the 4×4 matrix by expanding along the
// first row into 3×3 minors. Complexity: O(1), no allocation.
func (m Mat4) Det() float64 {
	minor := func(col int) Mat3 {
		var sub Mat3
		for i := 1; i < 4; i++ {
			k := 0
			for j := 0; j < 4; j++ {
				if j == col {
					continue
				}
				sub[i-1][k] = m[i][j]
				k++
			}
		}
		return sub
	}

	return m[0][0]*minor(0).Det() -
		m[0][1]*minor(1).Det() +
		m[0][2]*minor(2).Det() -
		m[0][3]*minor(3).Det()
}
