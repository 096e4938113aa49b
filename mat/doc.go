// Package mat provides the fixed-size 3×3 and 4×4 matrices the geometry
// kernel needs for its determinant-based solvers (circumsphere, Cramer-style
// barycentric systems).
//
// Storage is row-major: element [i][j] is row i, column j. The circumsphere
// solver in package shape fills rows with per-point data, so the row/column
// convention here must not change — a column permutation flips the sign of a
// determinant and corrupts every center/radius formula built on it.
//
// Determinants are evaluated by closed-form cofactor expansion: exact in the
// algebraic sense, no pivoting, no iteration, no allocation. Near-singular
// inputs are not detected here; callers compare the result against exact zero
// where degeneracy matters.
package mat
