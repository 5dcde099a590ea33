package restraints

import (
	"fmt"
	"math"

	"github.com/quenchlab/xtal/symop"
)

// Proxy is the immutable descriptor of one bond-similarity group: which
// atom pairs form the equivalent bonds, under which symmetry operators, and
// how strongly each bond is weighted in the residual.
//
// Fields are exported for structural serialization; constructors copy
// their inputs and callers must not mutate a Proxy after construction.
type Proxy struct {
	// ISeqs lists the (a, b) atom sequence indices of every bond.
	ISeqs [][2]int
	// SymOps holds one operator per bond, applied to the second atom's
	// fractional coordinate, or is empty meaning identity for all bonds.
	SymOps []symop.Op
	// Weights holds one non-negative weight per bond.
	Weights []float64
}

// NewProxy builds a proxy with identity symmetry for every bond.
//
// Errors: ErrEmptyGroup, ErrShapeMismatch, ErrBadWeight,
// ErrIndexOutOfRange (negative index).
func NewProxy(iSeqs [][2]int, weights []float64) (*Proxy, error) {
	return NewProxyWithSymOps(iSeqs, nil, weights)
}

// NewProxyWithSymOps builds a proxy with one symmetry operator per bond.
// symOps may be nil/empty, meaning identity for all bonds; otherwise its
// length must equal len(iSeqs).
//
// Errors: ErrEmptyGroup, ErrShapeMismatch, ErrBadWeight,
// ErrIndexOutOfRange (negative index).
func NewProxyWithSymOps(iSeqs [][2]int, symOps []symop.Op, weights []float64) (*Proxy, error) {
	n := len(iSeqs)
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d pairs", ErrShapeMismatch, len(weights), n)
	}
	if len(symOps) != 0 && len(symOps) != n {
		return nil, fmt.Errorf("%w: %d sym-ops for %d pairs", ErrShapeMismatch, len(symOps), n)
	}
	for k, pair := range iSeqs {
		if pair[0] < 0 || pair[1] < 0 {
			return nil, fmt.Errorf("%w: negative index in pair %d", ErrIndexOutOfRange, k)
		}
	}
	for k, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight[%d] = %g", ErrBadWeight, k, w)
		}
	}

	p := &Proxy{
		ISeqs:   make([][2]int, n),
		Weights: make([]float64, n),
	}
	copy(p.ISeqs, iSeqs)
	copy(p.Weights, weights)
	if len(symOps) != 0 {
		p.SymOps = make([]symop.Op, n)
		copy(p.SymOps, symOps)
	}
	return p, nil
}

// N returns the number of bonds in the group.
func (p *Proxy) N() int { return len(p.ISeqs) }

// opAt returns the operator of bond k, or nil when the proxy carries no
// sym-ops (identity for all bonds).
func (p *Proxy) opAt(k int) *symop.Op {
	if len(p.SymOps) == 0 {
		return nil
	}
	return &p.SymOps[k]
}

// validate re-checks the structural invariants; used after deserialization,
// where the wire bytes bypass the constructors.
func (p *Proxy) validate() error {
	_, err := NewProxyWithSymOps(p.ISeqs, p.SymOps, p.Weights)
	return err
}
