package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

func activeWorker(id string, fridayEligible bool) model.Worker {
	return model.Worker{
		ID:             id,
		Name:           "Worker " + id,
		Active:         true,
		FridayEligible: fridayEligible,
		Participation:  model.ParticipationActive,
		Role:           model.RoleStaff,
	}
}

func TestPool_MoveToBack(t *testing.T) {
	pool := NewPool([]model.Worker{
		activeWorker("a", true),
		activeWorker("b", true),
		activeWorker("c", true),
	}, false)

	pool.MoveToBack("a")

	ids := make([]string, 0, pool.Len())
	for _, w := range pool.Candidates() {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestPool_MoveToBack_UnknownWorkerIsNoop(t *testing.T) {
	pool := NewPool([]model.Worker{activeWorker("a", true)}, false)
	pool.MoveToBack("missing")

	require.Equal(t, 1, pool.Len())
	assert.Equal(t, "a", pool.Candidates()[0].ID)
}

func TestPool_ShufflePreservesMembership(t *testing.T) {
	workers := []model.Worker{
		activeWorker("a", true),
		activeWorker("b", true),
		activeWorker("c", false),
		activeWorker("d", false),
		activeWorker("e", true),
	}

	pool := NewPool(workers, true)
	require.Equal(t, len(workers), pool.Len())

	seen := make(map[string]bool)
	for _, w := range pool.Candidates() {
		seen[w.ID] = true
	}
	for _, w := range workers {
		assert.True(t, seen[w.ID], "worker %s lost by shuffle", w.ID)
	}
}

func TestPool_CopiesInput(t *testing.T) {
	workers := []model.Worker{activeWorker("a", true), activeWorker("b", true)}
	pool := NewPool(workers, false)

	pool.MoveToBack("a")

	// The caller's slice must be untouched.
	assert.Equal(t, "a", workers[0].ID)
	assert.Equal(t, "b", workers[1].ID)
}

func TestBuildPools_Partition(t *testing.T) {
	resting := activeWorker("resting", true)
	resting.Participation = model.ParticipationResting
	inactive := activeWorker("inactive", true)
	inactive.Active = false

	workers := []model.Worker{
		activeWorker("friday1", true),
		activeWorker("sunday1", false),
		activeWorker("friday2", true),
		resting,
		inactive,
	}

	fridayPool, generalPool := BuildPools(workers, false)

	assert.Equal(t, 2, fridayPool.Len())
	assert.Equal(t, 3, generalPool.Len())

	for _, w := range fridayPool.Candidates() {
		assert.True(t, w.FridayEligible)
	}
	for _, w := range generalPool.Candidates() {
		assert.True(t, w.Active)
		assert.Equal(t, model.ParticipationActive, w.Participation)
	}
}

func TestBuildPools_IndependentCopies(t *testing.T) {
	workers := []model.Worker{
		activeWorker("a", true),
		activeWorker("b", true),
	}

	fridayPool, generalPool := BuildPools(workers, false)

	fridayPool.MoveToBack("a")

	// Rotating the friday pool must not reorder the general pool.
	assert.Equal(t, "a", generalPool.Candidates()[0].ID)
	assert.Equal(t, "b", fridayPool.Candidates()[0].ID)
}
