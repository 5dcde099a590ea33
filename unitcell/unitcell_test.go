package unitcell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quenchlab/xtal/unitcell"
	"github.com/quenchlab/xtal/vec3"
)

// TestNew_BadParameters verifies eager validation of lengths and angles.
func TestNew_BadParameters(t *testing.T) {
	_, err := unitcell.New(0, 10, 10, 90, 90, 90)
	assert.ErrorIs(t, err, unitcell.ErrBadCellLength, "zero edge must error")

	_, err = unitcell.New(10, -1, 10, 90, 90, 90)
	assert.ErrorIs(t, err, unitcell.ErrBadCellLength, "negative edge must error")

	_, err = unitcell.New(10, 10, 10, 180, 90, 90)
	assert.ErrorIs(t, err, unitcell.ErrBadCellAngle, "angle of 180° must error")

	_, err = unitcell.New(10, 10, 10, 90, 0, 90)
	assert.ErrorIs(t, err, unitcell.ErrBadCellAngle, "angle of 0° must error")

	// α+β+γ near-flat combination: cos terms collapse the metric.
	_, err = unitcell.New(10, 10, 10, 1, 1, 179)
	assert.ErrorIs(t, err, unitcell.ErrDegenerateCell, "flat cell must error")
}

// TestOrthorhombic_Conversions checks that in an orthorhombic cell the
// conversion matrices are diagonal: fractional (x,y,z) ↦ (a·x, b·y, c·z).
func TestOrthorhombic_Conversions(t *testing.T) {
	cell, err := unitcell.New(10, 20, 30, 90, 90, 90)
	require.NoError(t, err)

	cart := cell.Orthogonalize(vec3.Vec3{0.5, 0.25, 0.1})
	assert.InDelta(t, 5.0, cart[0], 1e-12)
	assert.InDelta(t, 5.0, cart[1], 1e-12)
	assert.InDelta(t, 3.0, cart[2], 1e-12)

	frac := cell.Fractionalize(cart)
	assert.InDelta(t, 0.5, frac[0], 1e-12)
	assert.InDelta(t, 0.25, frac[1], 1e-12)
	assert.InDelta(t, 0.1, frac[2], 1e-12)

	assert.InDelta(t, 6000.0, cell.Volume(), 1e-9, "10·20·30 volume")
}

// TestTriclinic_RoundTrip verifies O·F ≈ I for a low-symmetry cell and that
// Fractionalize inverts Orthogonalize to full precision.
func TestTriclinic_RoundTrip(t *testing.T) {
	cell, err := unitcell.New(11.3, 12.7, 9.8, 83.2, 109.5, 95.0)
	require.NoError(t, err)

	prod := cell.OrthogonalizationMatrix().Mul(cell.FractionalizationMatrix())
	id := vec3.Identity()
	for i := 0; i < 9; i++ {
		assert.InDelta(t, id[i], prod[i], 1e-12, "O·F must be the identity")
	}

	f := vec3.Vec3{0.13, -0.42, 0.77}
	back := cell.Fractionalize(cell.Orthogonalize(f))
	for i := 0; i < 3; i++ {
		assert.InDelta(t, f[i], back[i], 1e-12, "frac→cart→frac round trip")
	}
}

// TestDistance compares Distance against the explicit orthogonalize-and-norm
// computation and a hand-checked orthorhombic case.
func TestDistance(t *testing.T) {
	cell, err := unitcell.New(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)

	// Fractional separation (0.3, 0.4, 0) in a 10 Å cubic cell → 5 Å.
	d := cell.Distance(vec3.Vec3{0.5, 0.5, 0.5}, vec3.Vec3{0.2, 0.1, 0.5})
	assert.InDelta(t, 5.0, d, 1e-12)

	tri, err := unitcell.New(8.1, 9.2, 10.3, 77.0, 102.5, 88.8)
	require.NoError(t, err)
	fa := vec3.Vec3{0.11, 0.22, 0.33}
	fb := vec3.Vec3{-0.05, 0.40, 0.21}
	want := tri.Orthogonalize(fa).Sub(tri.Orthogonalize(fb)).Norm()
	assert.InDelta(t, want, tri.Distance(fa, fb), 1e-12)
}

// TestParameters_Accessor ensures construction parameters echo back verbatim.
func TestParameters_Accessor(t *testing.T) {
	cell, err := unitcell.New(11.3, 12.7, 9.8, 83.2, 109.5, 95.0)
	require.NoError(t, err)
	a, b, c, al, be, ga := cell.Parameters()
	assert.Equal(t, [6]float64{11.3, 12.7, 9.8, 83.2, 109.5, 95.0}, [6]float64{a, b, c, al, be, ga})
}

// TestVolume_Triclinic cross-checks the closed-form volume against the
// determinant of the orthogonalization matrix.
func TestVolume_Triclinic(t *testing.T) {
	cell, err := unitcell.New(11.3, 12.7, 9.8, 83.2, 109.5, 95.0)
	require.NoError(t, err)
	det := cell.OrthogonalizationMatrix().Det()
	assert.InDelta(t, cell.Volume(), math.Abs(det), 1e-9, "volume equals |det O|")
}
