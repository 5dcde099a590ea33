// Package vec3 provides the 3-component vector and 3×3 matrix value types
// used throughout xtal, plus a handful of generic scalar helpers.
//
// What:
//
//   - Vec3: a [3]float64 value type for Cartesian or fractional coordinates.
//     Add/Sub/Scale/Dot/Norm and friends; every operation returns a new value.
//   - Mat3: a row-major [9]float64 matrix with MulVec, Mul, Transpose, Det.
//   - Scalar helpers: Pow2/Pow3/Pow4 and tolerance-based ApproxEqual, shared
//     by the numeric packages and their tests.
//
// Why:
//
//   - Coordinate math in restraint kernels runs millions of times per
//     refinement; stack-allocated value types keep those paths free of
//     heap traffic and pointer chasing.
//   - One shared definition avoids each package growing its own ad-hoc
//     three-float tuple.
//
// Vec3 and Mat3 are plain comparable arrays: == works, map keys work, and
// zero values are meaningful (the origin, the zero matrix).
//
// No errors are defined here; all operations are total.
package vec3
