// Package psa implements the parallel PSA driver: per-replication
// dynamic work-stealing across workers, a bounded buffer-pair pool,
// and deterministic common-random-number seeding, per §4.6.
package psa

import "hmse/model"

// bufferPair is the pair of patient-store buffers one replication
// needs: one for the intervention arm, one for the comparator arm.
// Both are reset by columnwise copy from the frozen snapshot before
// each use; no allocation happens after pool construction.
type bufferPair struct {
	intervention *model.Store
	comparator   *model.Store
}

// pool is a bounded, concurrency-safe channel of buffer pairs. A
// replication blocks on acquire if every pair is in use, which is the
// back-pressure the design calls for; sync.Pool cannot express this
// because it never blocks and may drop items under GC pressure.
type pool struct {
	ch chan *bufferPair
}

// newPool allocates size buffer pairs, each sized n, and seeds the
// channel so every pair is immediately available.
func newPool(size, n int) *pool {
	p := &pool{ch: make(chan *bufferPair, size)}
	for i := 0; i < size; i++ {
		p.ch <- &bufferPair{
			intervention: model.NewStore(n),
			comparator:   model.NewStore(n),
		}
	}
	return p
}

func (p *pool) acquire() *bufferPair {
	return <-p.ch
}

func (p *pool) release(bp *bufferPair) {
	p.ch <- bp
}

// poolSize implements the sizing rule from §4.6:
// min(K, 2*max(workers,2)).
func poolSize(k, workers int) int {
	w := workers
	if w < 2 {
		w = 2
	}
	size := 2 * w
	if size > k {
		size = k
	}
	if size < 1 {
		size = 1
	}
	return size
}
