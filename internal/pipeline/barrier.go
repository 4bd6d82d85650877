package pipeline

import "sync"

// Barrier is a one-shot counted rendezvous. Wait blocks every caller until
// the configured number of participants have arrived, then releases them all
// at once. The channel close gives the happens-before edge between the last
// mapper's shard writes and every reducer's reads.
type Barrier struct {
	mu      sync.Mutex
	pending int
	release chan struct{}
}

// NewBarrier creates a barrier for exactly participants arrivals.
func NewBarrier(participants int) *Barrier {
	if participants < 1 {
		panic("pipeline: barrier needs at least one participant")
	}
	return &Barrier{
		pending: participants,
		release: make(chan struct{}),
	}
}

// Wait registers the caller's arrival and blocks until every participant has
// arrived. The barrier is single-use: arriving after release panics, since
// it means the participant count was wired wrong.
func (b *Barrier) Wait() {
	b.mu.Lock()
	if b.pending == 0 {
		b.mu.Unlock()
		panic("pipeline: barrier reused after release")
	}
	b.pending--
	last := b.pending == 0
	b.mu.Unlock()

	if last {
		close(b.release)
		return
	}
	<-b.release
}
