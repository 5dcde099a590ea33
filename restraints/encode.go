package restraints

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Proxies travel between refinement sessions as CBOR: schema-less,
// canonical, and lossless for the three structural fields (ISeqs, SymOps,
// Weights). The encoding is an implementation detail; only the round-trip
// guarantee is contractual.

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("restraints: cbor enc mode: %v", err))
	}
}

// Encode writes the proxy's structural fields to w.
func (p *Proxy) Encode(w io.Writer) error {
	if err := encMode.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("restraints: encode proxy: %w", err)
	}
	return nil
}

// DecodeProxy reads one proxy from r and re-validates the structural
// invariants, so a corrupted or hand-edited stream cannot smuggle in a
// proxy the constructors would reject.
//
// Errors: decode failures wrapped with context, or the constructor errors
// (ErrEmptyGroup, ErrShapeMismatch, ErrBadWeight, ErrIndexOutOfRange).
func DecodeProxy(r io.Reader) (*Proxy, error) {
	var p Proxy
	if err := cbor.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("restraints: decode proxy: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeProxies writes a whole proxy list to w as one CBOR array.
func EncodeProxies(w io.Writer, proxies []*Proxy) error {
	if err := encMode.NewEncoder(w).Encode(proxies); err != nil {
		return fmt.Errorf("restraints: encode proxies: %w", err)
	}
	return nil
}

// DecodeProxies reads a proxy list written by EncodeProxies, re-validating
// every element. No partial list is returned on error.
func DecodeProxies(r io.Reader) ([]*Proxy, error) {
	var proxies []*Proxy
	if err := cbor.NewDecoder(r).Decode(&proxies); err != nil {
		return nil, fmt.Errorf("restraints: decode proxies: %w", err)
	}
	for i, p := range proxies {
		if p == nil {
			return nil, fmt.Errorf("restraints: decode proxies: nil element %d", i)
		}
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("proxy %d: %w", i, err)
		}
	}
	return proxies, nil
}
