package restraints

import (
	"fmt"

	"github.com/quenchlab/xtal/unitcell"
)

// Defaults for batch evaluation.
const (
	// DefaultWorkers evaluates proxies sequentially on the calling goroutine.
	DefaultWorkers = 1
)

// Option configures batch evaluation. Options are applied in order;
// constructors panic on nonsensical values (programmer error), while data
// problems surface as errors from the evaluation call itself.
type Option func(*options)

// options carries the resolved evaluation configuration.
type options struct {
	cell    *unitcell.UnitCell
	workers int
}

// defaultOptions returns the documented defaults: plain Cartesian
// evaluation, sequential.
func defaultOptions() options {
	return options{workers: DefaultWorkers}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithUnitCell enables symmetry-aware evaluation: every pair's second site
// is resolved through its proxy symmetry operator in the given cell before
// the distance is taken. Panics if cell is nil.
func WithUnitCell(cell *unitcell.UnitCell) Option {
	if cell == nil {
		panic("restraints: WithUnitCell(nil)")
	}
	return func(o *options) { o.cell = cell }
}

// WithWorkers evaluates batch calls on n goroutines. Each worker owns a
// private gradient buffer; buffers merge into the shared array in fixed
// chunk order, so results are reproducible for a given n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("restraints: WithWorkers(%d): need n ≥ 1", n))
	}
	return func(o *options) { o.workers = n }
}
