package restraints_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quenchlab/xtal/restraints"
	"github.com/quenchlab/xtal/symop"
)

// TestNewProxy_Validation enumerates the eager construction checks.
func TestNewProxy_Validation(t *testing.T) {
	_, err := restraints.NewProxy(nil, nil)
	assert.ErrorIs(t, err, restraints.ErrEmptyGroup, "no pairs")

	_, err = restraints.NewProxy([][2]int{{0, 1}}, []float64{1, 2})
	assert.ErrorIs(t, err, restraints.ErrShapeMismatch, "weight count")

	_, err = restraints.NewProxyWithSymOps(
		[][2]int{{0, 1}, {1, 2}},
		[]symop.Op{symop.Identity()},
		[]float64{1, 1})
	assert.ErrorIs(t, err, restraints.ErrShapeMismatch, "sym-op count")

	_, err = restraints.NewProxy([][2]int{{0, 1}}, []float64{-1})
	assert.ErrorIs(t, err, restraints.ErrBadWeight, "negative weight")

	_, err = restraints.NewProxy([][2]int{{-1, 1}}, []float64{1})
	assert.ErrorIs(t, err, restraints.ErrIndexOutOfRange, "negative index")
}

// TestNewProxy_CopiesInputs: mutating the caller's slices afterwards must
// not leak into the proxy.
func TestNewProxy_CopiesInputs(t *testing.T) {
	iSeqs := [][2]int{{0, 1}}
	weights := []float64{1}
	p, err := restraints.NewProxy(iSeqs, weights)
	require.NoError(t, err)

	iSeqs[0] = [2]int{7, 8}
	weights[0] = 99
	assert.Equal(t, [2]int{0, 1}, p.ISeqs[0])
	assert.Equal(t, 1.0, p.Weights[0])
}

// TestProxy_EncodeDecodeRoundTrip: serialization must reproduce ISeqs,
// SymOps and Weights exactly, with and without sym-ops.
func TestProxy_EncodeDecodeRoundTrip(t *testing.T) {
	op1, err := symop.Parse("-x, y+1/2, -z")
	require.NoError(t, err)
	op2, err := symop.Parse("-y, x-y, z+1/3")
	require.NoError(t, err)

	withOps, err := restraints.NewProxyWithSymOps(
		[][2]int{{0, 1}, {2, 5}},
		[]symop.Op{op1, op2},
		[]float64{1.5, 0.25})
	require.NoError(t, err)

	plain, err := restraints.NewProxy([][2]int{{3, 4}}, []float64{2})
	require.NoError(t, err)

	for _, p := range []*restraints.Proxy{withOps, plain} {
		var buf bytes.Buffer
		require.NoError(t, p.Encode(&buf))
		got, err := restraints.DecodeProxy(&buf)
		require.NoError(t, err)
		assert.Equal(t, p, got, "round trip must be lossless")
	}
}

// TestProxies_EncodeDecodeRoundTrip covers the list form used to persist a
// whole restraint setup.
func TestProxies_EncodeDecodeRoundTrip(t *testing.T) {
	a, err := restraints.NewProxy([][2]int{{0, 1}, {0, 2}}, []float64{1, 1})
	require.NoError(t, err)
	op, err := symop.Parse("z,x,y")
	require.NoError(t, err)
	b, err := restraints.NewProxyWithSymOps([][2]int{{1, 3}}, []symop.Op{op}, []float64{0.5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, restraints.EncodeProxies(&buf, []*restraints.Proxy{a, b}))
	got, err := restraints.DecodeProxies(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
}

// TestDecodeProxy_RejectsInvalidStream: decoded bytes go through the same
// invariants as the constructors.
func TestDecodeProxy_RejectsInvalidStream(t *testing.T) {
	// Hand-build an invariant-breaking proxy and push its raw encoding
	// through Decode: shape mismatch must surface.
	broken := &restraints.Proxy{
		ISeqs:   [][2]int{{0, 1}},
		Weights: []float64{1, 2},
	}
	var buf bytes.Buffer
	require.NoError(t, broken.Encode(&buf))
	_, err := restraints.DecodeProxy(&buf)
	assert.ErrorIs(t, err, restraints.ErrShapeMismatch)

	// Truncated stream.
	_, err = restraints.DecodeProxy(bytes.NewReader([]byte{0xa1}))
	assert.Error(t, err)
}

// TestProxy_N is a trivial accessor check.
func TestProxy_N(t *testing.T) {
	p, err := restraints.NewProxy([][2]int{{0, 1}, {1, 2}, {2, 3}}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, p.N())
}
