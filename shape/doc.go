// Package shape is the primitive construction and query layer of geomkit:
// validated geometric value types and the measures and predicates derived
// from them.
//
// 🚀 What does shape provide?
//
//	Four independent value types, composed only through vec primitives:
//		• Triangle2D  — signed area, orientation, circum/in-circle, containment
//		• Triangle3D  — area, normal, supporting plane, circum/in-circle, containment
//		• Tetrahedron — signed volume, circumsphere, insphere, containment
//		• Sphere      — center+radius measures and the 4-point circumsphere solver
//
//	plus the constructed collaborator types Circle2D, Circle3D and Plane.
//
// Construction is fail-fast: a constructor either returns a complete, valid
// instance or an error — duplicated vertices, collinear triangles and
// coplanar tetrahedra are rejected with ErrInvalidShape and can never be
// queried. Vertex order is semantically significant: it determines the sign
// of SignedArea/SignedVolume and the direction of normals.
//
// Containment tests take an explicit tolerance (epsilon ≥ 0, see
// DefaultTolerance) with consistent semantics across dimensions: an exact
// vertex hit within tolerance is inside, and barycentric coordinates may
// undershoot zero by at most the tolerance.
//
// Numerical contract: exact-zero degeneracy is rejected at construction, but
// near-degenerate configurations are NOT guarded after that — derived
// quantities may grow without bound or propagate NaN (e.g. the InCircle
// radicand going negative under rounding). Callers that treat NaN as a
// degeneracy signal can rely on this propagation; nothing is clamped.
//
// All types are immutable values: no method mutates its receiver, there is
// no shared state, and concurrent queries on the same value are race-free.
package shape
