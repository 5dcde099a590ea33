// Package restraints implements the bond-similarity geometry restraint:
// a group of bonds asserted to be chemically equivalent is pulled toward a
// common length by penalizing each bond's deviation from the group mean.
//
// What:
//
//   - Proxy — immutable descriptor of one equivalence group: atom index
//     pairs, optional per-pair symmetry operators, per-pair weights.
//     Proxies serialize losslessly (CBOR) for persistence across sessions.
//   - BondSimilarity — the per-group evaluator: distances, group mean,
//     per-bond deltas, rms, weighted residual, and the analytic gradient of
//     the residual with respect to every involved site.
//   - Batch entry points — DeltasRMS, Residuals, ResidualSum apply the
//     evaluator across many proxies sharing one Cartesian coordinate slice,
//     order preserved; ResidualSum accumulates gradients in place into a
//     caller-supplied buffer shared with other restraint types.
//
// Math:
//
//	d_k    = ‖a_k − b_k‖                    per-bond distance
//	mean   = (Σ_k d_k) / n                  unweighted group mean
//	δ_k    = d_k − mean                     per-bond delta
//	R      = Σ_k w_k·δ_k²                   the minimized residual
//
// Because the mean couples all bonds, ∂δ_k/∂d_j is (n−1)/n for j = k and
// −1/n otherwise; the gradient of R along bond j collapses to
// (2·w_j·δ_j − (2/n)·Σ_k w_k·δ_k) times the unit bond vector. A bond with
// coincident endpoints has no defined direction; its gradient is zero by
// policy, never NaN. A single-bond group has zero deltas and residual by
// construction and is not an error.
//
// Symmetry:
//
//	When a unit cell is supplied (WithUnitCell), each pair's second site is
//	mapped cart→frac, through its operator, and back before the distance is
//	taken; gradient contributions for that site are chained back through
//	the operator's Cartesian rotation. The identity operator is detected
//	and skipped, so it is bit-identical to the plain Cartesian path.
//
// Concurrency:
//
//	Evaluation is sequential and deterministic by default. WithWorkers(n)
//	opts into parallel batch evaluation: proxies are split into contiguous
//	chunks, each worker accumulates into a private gradient buffer, and
//	buffers merge into the shared array in fixed chunk order — results are
//	reproducible for a given worker count. Input slices are never mutated.
//
// Errors:
//
//   - ErrEmptyGroup: a proxy or sites array with zero bonds.
//   - ErrShapeMismatch: weights/sym-ops length disagrees with the pair count.
//   - ErrBadWeight: a negative or non-finite weight.
//   - ErrIndexOutOfRange: an atom index outside the coordinate slice.
//   - ErrGradientArraySize: gradient buffer length differs from the
//     coordinate slice.
//
// All validation is eager; batch calls return no partial results and leave
// the gradient array untouched on error.
package restraints
