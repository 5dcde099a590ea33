// Package xtal is a small toolkit of crystallographic structure-refinement
// primitives: vector math, unit-cell geometry, symmetry operators, and
// geometry-restraint kernels that feed residuals and analytic gradients to
// an external minimizer.
//
// 🚀 What is xtal?
//
//	A compact, deterministic library that brings together:
//		• vec3       — 3-vector & 3×3-matrix value types + scalar helpers
//		• unitcell   — fractional ↔ Cartesian conversion, cell volume, distances
//		• symop      — rotation+translation symmetry operators, "x,y,z" notation
//		• restraints — bond-similarity restraint groups: deltas, residuals,
//		  group-coupled analytic gradients, batch accumulation
//
// ✨ Why choose xtal?
//
//   - Numerically careful – the group-coupled gradient terms are exact,
//     degenerate geometry is handled by policy, never by NaN
//   - Deterministic – fixed evaluation order, reproducible parallel merges
//   - Plain Go values – no cgo, hot paths allocate nothing
//   - Tested – unit, property-based (finite-difference gradient checks),
//     example and benchmark coverage per package
//
// Data flow in one line: a global Cartesian coordinate slice plus a list of
// restraint proxies go into the batch entry points of restraints, which
// return residual vectors or one accumulated objective value plus an
// in-place gradient array for the optimizer.
//
//	go get github.com/quenchlab/xtal
package xtal
