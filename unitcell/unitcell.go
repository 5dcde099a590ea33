package unitcell

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/quenchlab/xtal/vec3"
)

// Sentinel errors for unit-cell construction.
var (
	// ErrBadCellLength indicates a non-positive cell edge length.
	ErrBadCellLength = errors.New("unitcell: cell lengths must be strictly positive")
	// ErrBadCellAngle indicates a cell angle outside (0°, 180°).
	ErrBadCellAngle = errors.New("unitcell: cell angles must lie strictly between 0° and 180°")
	// ErrDegenerateCell indicates parameters with (numerically) zero volume.
	ErrDegenerateCell = errors.New("unitcell: cell parameters describe a degenerate cell")
)

// UnitCell holds the six cell parameters together with the precomputed
// orthogonalization matrix O (fractional → Cartesian), the fractionalization
// matrix F = O⁻¹, and the cell volume. Immutable after New.
type UnitCell struct {
	a, b, c             float64 // edge lengths, Å
	alpha, beta, gamma  float64 // angles, degrees
	orth, frac          vec3.Mat3
	volume              float64
}

// New builds a UnitCell from the six cell parameters: edge lengths a, b, c
// in Å and angles alpha, beta, gamma in degrees.
//
// The orthogonalization matrix follows the PDB convention:
//
//	| a   b·cosγ   c·cosβ              |
//	| 0   b·sinγ   c·(cosα−cosβ·cosγ)/sinγ |
//	| 0   0        c·v/sinγ            |
//
// with v = √(1 − cos²α − cos²β − cos²γ + 2·cosα·cosβ·cosγ), so that the
// cell volume is a·b·c·v. F is obtained by inverting O once, here, so the
// per-coordinate conversions are branch-free matrix multiplies.
//
// Errors:
//   - ErrBadCellLength if any of a, b, c ≤ 0.
//   - ErrBadCellAngle if any angle is outside (0°, 180°).
//   - ErrDegenerateCell if the angle combination collapses the cell
//     (v² ≤ 0) or O is numerically singular.
func New(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: got (%g, %g, %g)", ErrBadCellLength, a, b, c)
	}
	for _, ang := range [3]float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, fmt.Errorf("%w: got (%g, %g, %g)", ErrBadCellAngle, alpha, beta, gamma)
		}
	}

	cosA, cosB := cosDeg(alpha), cosDeg(beta)
	cosG, sinG := cosDeg(gamma), sinDeg(gamma)

	v2 := 1 - cosA*cosA - cosB*cosB - cosG*cosG + 2*cosA*cosB*cosG
	if v2 <= 0 {
		return nil, fmt.Errorf("%w: angles (%g, %g, %g)", ErrDegenerateCell, alpha, beta, gamma)
	}
	v := math.Sqrt(v2)

	orth := vec3.Mat3{
		a, b * cosG, c * cosB,
		0, b * sinG, c * (cosA - cosB*cosG) / sinG,
		0, 0, c * v / sinG,
	}

	// Invert O once at construction; a singular O means a degenerate cell.
	oDense := mat.NewDense(3, 3, append([]float64(nil), orth[:]...))
	var inv mat.Dense
	if err := inv.Inverse(oDense); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateCell, err)
	}
	var frac vec3.Mat3
	copy(frac[:], inv.RawMatrix().Data)

	return &UnitCell{
		a: a, b: b, c: c,
		alpha: alpha, beta: beta, gamma: gamma,
		orth:   orth,
		frac:   frac,
		volume: a * b * c * v,
	}, nil
}

// cosDeg and sinDeg evaluate trigonometry in degrees, snapping the right
// angle to exact 0/1 so orthogonal cells get exactly diagonal matrices
// instead of picking up ~1e-17 cross terms from math.Cos(π/2).
func cosDeg(a float64) float64 {
	if a == 90 {
		return 0
	}
	return math.Cos(a * math.Pi / 180)
}

func sinDeg(a float64) float64 {
	if a == 90 {
		return 1
	}
	return math.Sin(a * math.Pi / 180)
}

// Parameters returns the six cell parameters in construction order.
func (u *UnitCell) Parameters() (a, b, c, alpha, beta, gamma float64) {
	return u.a, u.b, u.c, u.alpha, u.beta, u.gamma
}

// Volume returns the cell volume in Å³.
func (u *UnitCell) Volume() float64 { return u.volume }

// Orthogonalize maps a fractional coordinate to Cartesian space.
func (u *UnitCell) Orthogonalize(frac vec3.Vec3) vec3.Vec3 {
	return u.orth.MulVec(frac)
}

// Fractionalize maps a Cartesian coordinate to fractional space.
func (u *UnitCell) Fractionalize(cart vec3.Vec3) vec3.Vec3 {
	return u.frac.MulVec(cart)
}

// Distance returns the Cartesian distance between two fractional positions.
func (u *UnitCell) Distance(fracA, fracB vec3.Vec3) float64 {
	return u.orth.MulVec(fracA.Sub(fracB)).Norm()
}

// OrthogonalizationMatrix returns O (fractional → Cartesian).
func (u *UnitCell) OrthogonalizationMatrix() vec3.Mat3 { return u.orth }

// FractionalizationMatrix returns F = O⁻¹ (Cartesian → fractional).
func (u *UnitCell) FractionalizationMatrix() vec3.Mat3 { return u.frac }
