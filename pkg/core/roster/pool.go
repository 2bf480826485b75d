package roster

import (
	"math/rand"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

// Pool is a rotation queue of workers. Assignment draws from the front and
// rotates the drawn worker to the back, which gives soft round-robin
// fairness without per-worker counters.
type Pool struct {
	workers []model.Worker
}

// NewPool builds a pool over a copy of the given workers. When shuffle is
// true the initial order is a uniform random permutation, so no worker is
// systematically favoured by directory order across months.
func NewPool(workers []model.Worker, shuffle bool) *Pool {
	copied := make([]model.Worker, len(workers))
	copy(copied, workers)
	if shuffle {
		rand.Shuffle(len(copied), func(i, j int) {
			copied[i], copied[j] = copied[j], copied[i]
		})
	}
	return &Pool{workers: copied}
}

// Candidates returns the pool in current rotation order. The returned slice
// is the pool's own backing array; callers must not mutate it.
func (p *Pool) Candidates() []model.Worker {
	return p.workers
}

// MoveToBack rotates the worker with the given id to the end of the queue.
// No-op if the worker is not in the pool.
func (p *Pool) MoveToBack(workerID string) {
	for i, w := range p.workers {
		if w.ID == workerID {
			p.workers = append(append(p.workers[:i:i], p.workers[i+1:]...), w)
			return
		}
	}
}

func (p *Pool) Len() int {
	return len(p.workers)
}

// BuildPools partitions workers into the Friday-eligible pool and the
// general pool. Both pools hold only active workers with participation
// status "active"; the general pool is an independent copy so rotating one
// pool never reorders the other.
func BuildPools(workers []model.Worker, shuffle bool) (fridayPool, generalPool *Pool) {
	var general []model.Worker
	for _, w := range workers {
		if w.Active && w.Participation == model.ParticipationActive {
			general = append(general, w)
		}
	}

	var friday []model.Worker
	for _, w := range general {
		if w.FridayEligible {
			friday = append(friday, w)
		}
	}

	return NewPool(friday, shuffle), NewPool(general, shuffle)
}
