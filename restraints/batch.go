package restraints

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/quenchlab/xtal/unitcell"
	"github.com/quenchlab/xtal/vec3"
)

// DeltasRMS evaluates every proxy against sitesCart and returns one
// RMSDeltas value per proxy, input order preserved.
//
// Pass WithUnitCell to resolve proxy symmetry operators; WithWorkers to
// evaluate proxies in parallel (output order is unaffected).
//
// Errors: ErrIndexOutOfRange. No partial results are returned.
func DeltasRMS(sitesCart []vec3.Vec3, proxies []*Proxy, opts ...Option) ([]float64, error) {
	return mapProxies(sitesCart, proxies, gatherOptions(opts), (*BondSimilarity).RMSDeltas)
}

// Residuals evaluates every proxy against sitesCart and returns one
// Residual value per proxy, input order preserved. Options as in DeltasRMS.
//
// Errors: ErrIndexOutOfRange. No partial results are returned.
func Residuals(sitesCart []vec3.Vec3, proxies []*Proxy, opts ...Option) ([]float64, error) {
	return mapProxies(sitesCart, proxies, gatherOptions(opts), (*BondSimilarity).Residual)
}

// ResidualSum returns Σ Residual over all proxies and, when gradientArray
// is non-nil, accumulates (adds in place) every proxy's per-atom gradient
// contributions into it, indexed by the proxies' ISeqs. The shared buffer
// lets many restraint types contribute to one objective gradient without
// reallocation; pass nil to skip gradient work entirely.
//
// With WithUnitCell, a second site resolved through a non-identity operator
// has its gradient chained back through the operator's Cartesian rotation
// M = O·R·F (g_b = Mᵀ·g_resolved), so finite-difference perturbation of the
// stored coordinate matches the accumulated analytic gradient.
//
// With WithWorkers(n > 1), proxies are split into contiguous chunks; each
// worker accumulates into a private buffer and partial sums/buffers merge
// in fixed chunk order — reproducible for a given n, though the floating-
// point sum may differ from the sequential one in the last bits.
//
// Errors: ErrIndexOutOfRange, ErrGradientArraySize. On error the gradient
// array is left untouched.
func ResidualSum(sitesCart []vec3.Vec3, proxies []*Proxy, gradientArray []vec3.Vec3, opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	if gradientArray != nil && len(gradientArray) != len(sitesCart) {
		return 0, fmt.Errorf("%w: %d gradients for %d sites",
			ErrGradientArraySize, len(gradientArray), len(sitesCart))
	}
	if err := validateBatch(sitesCart, proxies); err != nil {
		return 0, err
	}

	workers := clampWorkers(o.workers, len(proxies))
	if workers <= 1 {
		// Sequential reference path: fixed input order, direct accumulation.
		sum := 0.0
		for _, p := range proxies {
			b, err := bondSimilarityFromProxy(o.cell, sitesCart, p)
			if err != nil {
				return 0, err
			}
			sum += b.Residual()
			if gradientArray != nil {
				b.addGradients(gradientArray, p, o.cell)
			}
		}
		return sum, nil
	}

	sums := make([]float64, workers)
	bufs := make([][]vec3.Vec3, workers)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := chunkBounds(len(proxies), workers, w)
		var buf []vec3.Vec3
		if gradientArray != nil {
			buf = make([]vec3.Vec3, len(sitesCart))
			bufs[w] = buf
		}
		eg.Go(func() error {
			local := 0.0
			for i := lo; i < hi; i++ {
				b, err := bondSimilarityFromProxy(o.cell, sitesCart, proxies[i])
				if err != nil {
					return err
				}
				local += b.Residual()
				if buf != nil {
					b.addGradients(buf, proxies[i], o.cell)
				}
			}
			sums[w] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	// Deterministic merge: chunk order, then site order.
	total := 0.0
	for _, s := range sums {
		total += s
	}
	if gradientArray != nil {
		for _, buf := range bufs {
			for i := range gradientArray {
				gradientArray[i] = gradientArray[i].Add(buf[i])
			}
		}
	}
	return total, nil
}

// mapProxies evaluates f over every proxy, writing results into disjoint
// output slots so the parallel path needs no synchronization beyond the
// errgroup itself.
func mapProxies(sitesCart []vec3.Vec3, proxies []*Proxy, o options, f func(*BondSimilarity) float64) ([]float64, error) {
	if err := validateBatch(sitesCart, proxies); err != nil {
		return nil, err
	}
	out := make([]float64, len(proxies))

	workers := clampWorkers(o.workers, len(proxies))
	if workers <= 1 {
		for i, p := range proxies {
			b, err := bondSimilarityFromProxy(o.cell, sitesCart, p)
			if err != nil {
				return nil, err
			}
			out[i] = f(b)
		}
		return out, nil
	}

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := chunkBounds(len(proxies), workers, w)
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				b, err := bondSimilarityFromProxy(o.cell, sitesCart, proxies[i])
				if err != nil {
					return err
				}
				out[i] = f(b)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// addGradients scatters the group's gradients into ga by the proxy's atom
// indices, chaining second-site terms through non-identity operators.
func (b *BondSimilarity) addGradients(ga []vec3.Vec3, p *Proxy, cell *unitcell.UnitCell) {
	grads := b.Gradients()
	for k, pair := range p.ISeqs {
		ga[pair[0]] = ga[pair[0]].Add(grads[k][0])
		gb := grads[k][1]
		if cell != nil {
			if op := p.opAt(k); op != nil && !op.IsIdentity() {
				m := cell.OrthogonalizationMatrix().Mul(op.Rotation()).Mul(cell.FractionalizationMatrix())
				gb = m.Transpose().MulVec(gb)
			}
		}
		ga[pair[1]] = ga[pair[1]].Add(gb)
	}
}

// validateBatch bounds-checks every proxy index before any evaluation, so
// batch calls never mutate outputs and then fail halfway.
func validateBatch(sitesCart []vec3.Vec3, proxies []*Proxy) error {
	n := len(sitesCart)
	for i, p := range proxies {
		for _, pair := range p.ISeqs {
			if pair[0] < 0 || pair[0] >= n || pair[1] < 0 || pair[1] >= n {
				return fmt.Errorf("%w: proxy %d pair (%d, %d) against %d sites",
					ErrIndexOutOfRange, i, pair[0], pair[1], n)
			}
		}
	}
	return nil
}

// clampWorkers bounds the worker count by the amount of work available.
func clampWorkers(workers, jobs int) int {
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// chunkBounds returns the half-open proxy range of chunk w out of `workers`
// contiguous chunks covering n proxies.
func chunkBounds(n, workers, w int) (lo, hi int) {
	size := (n + workers - 1) / workers
	lo = w * size
	hi = lo + size
	if hi > n {
		hi = n
	}
	if lo > n {
		lo = n
	}
	return lo, hi
}
