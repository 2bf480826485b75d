package db

import (
	"context"
	"errors"
	"time"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

// ErrSlotTaken is returned by ClaimSlot when the conditional update matched
// zero rows: the slot left exchange_requested state between the claimant
// reading and writing. The losing claimant gets this, never a silent
// success.
var ErrSlotTaken = errors.New("slot is no longer available for exchange")

// ErrSlotNotFound is returned when a slot id does not exist.
var ErrSlotNotFound = errors.New("slot not found")

// WorkerStore reads the worker directory fields the scheduler depends on
// and carries the two admin mutations the scheduler owns: creating the
// scheduling record and flipping its flags. Full profile edits live with
// the directory collaborator.
type WorkerStore interface {
	GetActiveWorkers(ctx context.Context) ([]model.Worker, error)
	GetWorker(ctx context.Context, workerID string) (*model.Worker, error)
	InsertWorker(ctx context.Context, worker model.Worker) error
	// UpdateWorkerFlags sets the scheduling fields: active, Friday
	// eligibility and participation status.
	UpdateWorkerFlags(ctx context.Context, workerID string, active, fridayEligible bool, participation model.ParticipationStatus) error
}

// RosterStore is the persistence contract of a generation run. Both
// operations are idempotent: re-running a month never duplicates rows.
type RosterStore interface {
	// UpsertCalendarDays inserts days keyed by date and returns the day id
	// for each input date.
	UpsertCalendarDays(ctx context.Context, days []CalendarDayUpsert) (map[time.Time]int64, error)
	// UpsertSlots inserts or overwrites slots keyed by (day id, slot number).
	UpsertSlots(ctx context.Context, slots []SlotUpsert) error
}

// SlotStore serves the exchange protocol and the read-only views.
type SlotStore interface {
	GetSlot(ctx context.Context, slotID int64) (*model.ShiftSlot, error)
	// UpdateSlotStatus sets the slot's status without touching the holder.
	UpdateSlotStatus(ctx context.Context, slotID int64, status model.SlotStatus) error
	// ClaimSlot atomically reassigns an exchange_requested slot to the
	// claimant. Returns ErrSlotTaken if the slot is no longer in
	// exchange_requested state (single-winner semantics).
	ClaimSlot(ctx context.Context, slotID int64, claimantID string) error
	// SetCoveringWorker records cover without changing the original holder.
	SetCoveringWorker(ctx context.Context, slotID int64, coveringWorkerID string) error
	// ListExchangeRequested returns held slots in exchange_requested state
	// on or after the given date.
	ListExchangeRequested(ctx context.Context, from time.Time) ([]SlotView, error)
	// ListWorkerSlots returns a worker's held slots on or after the given date.
	ListWorkerSlots(ctx context.Context, workerID string, from time.Time) ([]SlotView, error)
	// ListSlotsFrom returns all slots with their days on or after the given
	// date, ascending by date then slot number.
	ListSlotsFrom(ctx context.Context, from time.Time) ([]SlotView, error)
	// CountOpenSlots counts open slots on or after the given date.
	CountOpenSlots(ctx context.Context, from time.Time) (int, error)
}

// Database is the full store contract. The postgres implementation
// satisfies it; services depend only on the narrow slices above.
type Database interface {
	WorkerStore
	RosterStore
	SlotStore
}
