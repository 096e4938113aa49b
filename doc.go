// Package geomkit is a small computational-geometry kernel: exact-construction
// geometric primitives and the measures and predicates derived from them.
//
// 🚀 What is geomkit?
//
//	A pure-Go library of immutable geometric value types with fail-fast,
//	validated construction:
//		• Triangle2D    — signed area, orientation, circum/in-circle, containment
//		• Triangle3D    — area, normal, supporting plane, circum/in-circle, containment
//		• Tetrahedron   — signed volume, circumsphere, insphere, containment
//		• Sphere        — measures plus the determinant-based 4-point circumsphere solver
//
// ✨ Why choose geomkit?
//
//   - Robust by construction – degenerate shapes (collinear, coplanar,
//     duplicated vertices) are rejected at construction time, never queried
//   - Tolerance-aware – every containment test takes an explicit non-negative
//     epsilon with consistent semantics across dimensions
//   - Pure Go – no cgo, no global state, every operation a pure function
//   - Concurrency-safe – all types are immutable values, shareable without locks
//
// Under the hood, everything is organized under three subpackages:
//
//	vec/   — 2D/3D point & vector arithmetic (cross, dot, length, tolerance equality)
//	mat/   — fixed-size 3×3 and 4×4 matrices with closed-form determinants
//	shape/ — the primitive construction and query layer
//
// Quick ASCII example:
//
//	    C
//	    │╲
//	    │ ╲        NewTriangle2D(A, B, C) validates the three vertices,
//	    │  ╲       then SignedArea, InCircle, Contains … are pure queries.
//	    A───B
//
// Dive into the per-package docs for the full API and numerical contracts.
//
//	go get github.com/katalvlaran/geomkit/shape
package geomkit
