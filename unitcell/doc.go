// Package unitcell models the periodic repeat geometry of a crystal and the
// conversion between fractional and Cartesian coordinates.
//
// What:
//
//   - UnitCell wraps the six cell parameters (a, b, c in Å; α, β, γ in
//     degrees) and precomputes the orthogonalization matrix O and its
//     inverse F (PDB convention: a along x, b in the xy plane).
//   - Orthogonalize maps fractional → Cartesian, Fractionalize the reverse.
//   - Distance returns the Cartesian separation of two fractional positions.
//   - Volume returns the cell volume in Å³.
//
// Why:
//
//   - Symmetry operators act on fractional coordinates; restraint kernels
//     work in Cartesian space. Every symmetry-aware distance evaluation
//     round-trips through this package.
//   - Precomputing O and F at construction keeps the per-site conversion a
//     single 3×3 multiply with no allocation.
//
// Errors:
//
//   - ErrBadCellLength: a, b or c is not strictly positive.
//   - ErrBadCellAngle: an angle is outside the open interval (0°, 180°).
//   - ErrDegenerateCell: the parameters describe a flat cell (zero volume),
//     so the metric cannot be inverted.
//
// A UnitCell is immutable once constructed and safe for concurrent use.
package unitcell
