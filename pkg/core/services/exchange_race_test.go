package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// casSlotStore is an in-memory store whose ClaimSlot has the same
// single-winner semantics as the SQL conditional update: the status check
// and the reassignment happen under one lock.
type casSlotStore struct {
	mu    sync.Mutex
	slots map[int64]*model.ShiftSlot
}

func newCASSlotStore() *casSlotStore {
	return &casSlotStore{slots: make(map[int64]*model.ShiftSlot)}
}

func (s *casSlotStore) GetSlot(ctx context.Context, slotID int64) (*model.ShiftSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return nil, db.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (s *casSlotStore) UpdateSlotStatus(ctx context.Context, slotID int64, status model.SlotStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return db.ErrSlotNotFound
	}
	slot.Status = status
	return nil
}

func (s *casSlotStore) ClaimSlot(ctx context.Context, slotID int64, claimantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok || slot.Status != model.SlotExchangeRequested {
		return db.ErrSlotTaken
	}
	slot.Status = model.SlotAssigned
	slot.WorkerID = &claimantID
	slot.CoveringWorkerID = nil
	return nil
}

func (s *casSlotStore) SetCoveringWorker(ctx context.Context, slotID int64, coveringWorkerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return db.ErrSlotNotFound
	}
	slot.CoveringWorkerID = &coveringWorkerID
	slot.Status = model.SlotAssigned
	return nil
}

func (s *casSlotStore) ListExchangeRequested(ctx context.Context, from time.Time) ([]db.SlotView, error) {
	return nil, nil
}

func (s *casSlotStore) ListWorkerSlots(ctx context.Context, workerID string, from time.Time) ([]db.SlotView, error) {
	return nil, nil
}

func (s *casSlotStore) ListSlotsFrom(ctx context.Context, from time.Time) ([]db.SlotView, error) {
	return nil, nil
}

func (s *casSlotStore) CountOpenSlots(ctx context.Context, from time.Time) (int, error) {
	return 0, nil
}

func TestClaimShift_ConcurrentClaimsSingleWinner(t *testing.T) {
	store := newCASSlotStore()
	holder := "maria"
	store.slots[1] = &model.ShiftSlot{
		ID:       1,
		Status:   model.SlotExchangeRequested,
		WorkerID: &holder,
	}

	claimants := []string{"carmen", "lucia"}
	results := make([]error, len(claimants))

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(len(claimants))
	for i, claimant := range claimants {
		go func(i int, claimant string) {
			defer done.Done()
			start.Wait()
			results[i] = ClaimShift(context.Background(), store, zap.NewNop(), 1, claimant)
		}(i, claimant)
	}
	start.Done()
	done.Wait()

	winners := 0
	var winner string
	for i, err := range results {
		if err == nil {
			winners++
			winner = claimants[i]
		} else {
			assert.ErrorIs(t, err, ErrConflict, "loser must see a claim conflict, got %v", err)
		}
	}
	require.Equal(t, 1, winners, "exactly one claim must succeed")

	slot, err := store.GetSlot(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.SlotAssigned, slot.Status)
	require.NotNil(t, slot.WorkerID)
	assert.Equal(t, winner, *slot.WorkerID)
}

func TestClaimShift_SecondClaimAfterFirstIsConflict(t *testing.T) {
	store := newCASSlotStore()
	holder := "maria"
	store.slots[1] = &model.ShiftSlot{
		ID:       1,
		Status:   model.SlotExchangeRequested,
		WorkerID: &holder,
	}

	// Expose → claim → second claim on the same slot id.
	require.NoError(t, ClaimShift(context.Background(), store, zap.NewNop(), 1, "carmen"))

	err := ClaimShift(context.Background(), store, zap.NewNop(), 1, "lucia")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	slot, getErr := store.GetSlot(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, "carmen", *slot.WorkerID, "first claimant keeps the slot")
}
