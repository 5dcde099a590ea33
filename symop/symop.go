package symop

import (
	"github.com/quenchlab/xtal/vec3"
)

// Op is a symmetry operator acting on fractional coordinates:
// Apply(f) = R·f + T. R is row-major; T holds the translation components.
//
// Fields are exported for structural serialization; treat an Op as
// immutable once constructed.
type Op struct {
	R vec3.Mat3
	T vec3.Vec3
}

// Identity returns the neutral operator (R = I, T = 0).
func Identity() Op {
	return Op{R: vec3.Identity()}
}

// Apply maps the fractional coordinate f through the operator.
func (o Op) Apply(f vec3.Vec3) vec3.Vec3 {
	return o.R.MulVec(f).Add(o.T)
}

// IsIdentity reports whether the operator is exactly the neutral element.
// Comparison is exact: operators built from triplet notation have exact
// small-rational entries, so no tolerance is needed.
func (o Op) IsIdentity() bool {
	return o.R == vec3.Identity() && o.T.IsZero()
}

// Rotation returns the rotation part R.
func (o Op) Rotation() vec3.Mat3 { return o.R }

// Translation returns the translation part T.
func (o Op) Translation() vec3.Vec3 { return o.T }
