package restraints

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quenchlab/xtal/symop"
	"github.com/quenchlab/xtal/unitcell"
	"github.com/quenchlab/xtal/vec3"
)

// BondSimilarity evaluates one equivalence group of bonds. It is an
// ephemeral snapshot: distances, mean and deltas are fixed at construction
// from the sites it was built with, and the value is discarded once the
// caller has pulled residual/gradients for the current coordinates.
type BondSimilarity struct {
	sitesArray [][2]vec3.Vec3
	weights    []float64
	distances  []float64
	deltas     []float64
	mean       float64
}

// NewBondSimilarity builds the evaluator directly from resolved site pairs
// and weights — one [2]Vec3 per bond, symmetry already applied by the
// caller. The slices are borrowed, not copied; they must stay untouched for
// the lifetime of the value.
//
// Errors: ErrEmptyGroup, ErrShapeMismatch, ErrBadWeight.
func NewBondSimilarity(sitesArray [][2]vec3.Vec3, weights []float64) (*BondSimilarity, error) {
	n := len(sitesArray)
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d site pairs", ErrShapeMismatch, len(weights), n)
	}
	for k, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight[%d] = %g", ErrBadWeight, k, w)
		}
	}
	return newFromSites(sitesArray, weights), nil
}

// BondSimilarityFromProxy resolves a proxy against the global Cartesian
// coordinate slice without a unit cell: second sites are taken verbatim and
// any proxy symmetry operators are ignored (the pure Cartesian contract).
//
// Errors: ErrIndexOutOfRange.
func BondSimilarityFromProxy(sitesCart []vec3.Vec3, p *Proxy) (*BondSimilarity, error) {
	return bondSimilarityFromProxy(nil, sitesCart, p)
}

// BondSimilarityFromProxySym resolves a proxy against the global Cartesian
// coordinate slice inside a unit cell: each pair's second site is mapped
// cart→frac, through the pair's operator, and back to Cartesian before the
// bond vector is taken. Identity operators (and proxies without sym-ops)
// skip the round trip entirely.
//
// Errors: ErrIndexOutOfRange.
func BondSimilarityFromProxySym(cell *unitcell.UnitCell, sitesCart []vec3.Vec3, p *Proxy) (*BondSimilarity, error) {
	return bondSimilarityFromProxy(cell, sitesCart, p)
}

func bondSimilarityFromProxy(cell *unitcell.UnitCell, sitesCart []vec3.Vec3, p *Proxy) (*BondSimilarity, error) {
	n := p.N()
	sitesArray := make([][2]vec3.Vec3, n)
	for k, pair := range p.ISeqs {
		var op *symop.Op
		if cell != nil {
			op = p.opAt(k)
		}
		resolved, err := resolvePair(cell, sitesCart, pair, op)
		if err != nil {
			return nil, err
		}
		sitesArray[k] = resolved
	}
	return newFromSites(sitesArray, p.Weights), nil
}

// resolvePair bounds-checks one index pair and returns its two Cartesian
// sites, mapping the second through op inside cell when both are present.
func resolvePair(cell *unitcell.UnitCell, sitesCart []vec3.Vec3, pair [2]int, op *symop.Op) ([2]vec3.Vec3, error) {
	n := len(sitesCart)
	if pair[0] < 0 || pair[0] >= n || pair[1] < 0 || pair[1] >= n {
		return [2]vec3.Vec3{}, fmt.Errorf("%w: pair (%d, %d) against %d sites",
			ErrIndexOutOfRange, pair[0], pair[1], n)
	}
	a, b := sitesCart[pair[0]], sitesCart[pair[1]]
	if cell != nil && op != nil && !op.IsIdentity() {
		b = cell.Orthogonalize(op.Apply(cell.Fractionalize(b)))
	}
	return [2]vec3.Vec3{a, b}, nil
}

// newFromSites computes distances, group mean and deltas once; all
// accessors afterwards are O(1) or a single pass over precomputed slices.
func newFromSites(sitesArray [][2]vec3.Vec3, weights []float64) *BondSimilarity {
	n := len(sitesArray)
	distances := make([]float64, n)
	for k, pair := range sitesArray {
		distances[k] = pair[0].Sub(pair[1]).Norm()
	}
	mean := floats.Sum(distances) / float64(n)
	deltas := make([]float64, n)
	for k, d := range distances {
		deltas[k] = d - mean
	}
	return &BondSimilarity{
		sitesArray: sitesArray,
		weights:    weights,
		distances:  distances,
		deltas:     deltas,
		mean:       mean,
	}
}

// SitesArray returns the resolved site pairs. Read-only view.
func (b *BondSimilarity) SitesArray() [][2]vec3.Vec3 { return b.sitesArray }

// Weights returns the per-bond weights. Read-only view.
func (b *BondSimilarity) Weights() []float64 { return b.weights }

// MeanDistance returns the unweighted mean bond distance of the group.
func (b *BondSimilarity) MeanDistance() float64 { return b.mean }

// Deltas returns d_k − mean for every bond, as a read-only view into
// internal storage — callers must not modify it.
func (b *BondSimilarity) Deltas() []float64 { return b.deltas }

// RMSDeltas returns √(Σ δ_k² / n).
func (b *BondSimilarity) RMSDeltas() float64 {
	n := float64(len(b.deltas))
	return math.Sqrt(floats.Dot(b.deltas, b.deltas) / n)
}

// Residual returns Σ w_k·δ_k², the group's contribution to the objective.
func (b *BondSimilarity) Residual() float64 {
	r := 0.0
	for k, d := range b.deltas {
		r += b.weights[k] * d * d
	}
	return r
}

// Gradients returns ∂Residual/∂site for both endpoints of every bond, in
// bond order. The mean couples the group: along bond j the scalar factor is
//
//	2·w_j·δ_j − (2/n)·Σ_k w_k·δ_k
//
// applied to the unit bond vector (a_j−b_j)/d_j, with the sign flipped for
// the second endpoint. A zero-length bond has no direction; both of its
// gradient vectors are zero.
func (b *BondSimilarity) Gradients() [][2]vec3.Vec3 {
	n := float64(len(b.deltas))
	coupling := 2 * floats.Dot(b.weights, b.deltas) / n
	g := make([][2]vec3.Vec3, len(b.deltas))
	for k, d := range b.distances {
		if d == 0 {
			continue // DegenerateBond policy: zero vectors
		}
		f := (2*b.weights[k]*b.deltas[k] - coupling) / d
		bond := b.sitesArray[k][0].Sub(b.sitesArray[k][1])
		g[k][0] = bond.Scale(f)
		g[k][1] = bond.Scale(-f)
	}
	return g
}
