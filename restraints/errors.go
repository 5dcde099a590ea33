package restraints

import "errors"

var (
	// ErrEmptyGroup indicates a restraint group with no bonds.
	ErrEmptyGroup = errors.New("restraints: bond-similarity group must contain at least one bond")
	// ErrShapeMismatch indicates weights or sym-ops whose length disagrees
	// with the number of index pairs.
	ErrShapeMismatch = errors.New("restraints: weights and sym-ops must match the index-pair count")
	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("restraints: weights must be finite and non-negative")
	// ErrIndexOutOfRange indicates an atom index outside the coordinate slice.
	ErrIndexOutOfRange = errors.New("restraints: atom index outside the coordinate array")
	// ErrGradientArraySize indicates a gradient buffer whose length differs
	// from the coordinate slice.
	ErrGradientArraySize = errors.New("restraints: gradient array length must equal the coordinate array length")
)
