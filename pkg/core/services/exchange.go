package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// ExchangeableSlot is one claim opportunity shown to staff.
type ExchangeableSlot struct {
	SlotID     int64
	Date       time.Time
	DayType    model.DayType
	SlotNumber int
}

// ExposeForExchange transitions the caller's own assigned slot to
// exchange_requested, making it claimable by others. Only the current
// holder may expose a slot, and only from the assigned state.
func ExposeForExchange(ctx context.Context, store db.SlotStore, logger *zap.Logger, slotID int64, callerID string) (*model.ShiftSlot, error) {
	slot, err := store.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, db.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: slot %d does not exist", ErrInvalidInput, slotID)
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}

	if !slot.HeldBy(callerID) {
		return nil, fmt.Errorf("%w: only the current holder may expose a slot", ErrForbidden)
	}
	if slot.Status != model.SlotAssigned {
		return nil, fmt.Errorf("%w: slot is %s, not %s", ErrConflict, slot.Status, model.SlotAssigned)
	}

	if err := store.UpdateSlotStatus(ctx, slotID, model.SlotExchangeRequested); err != nil {
		return nil, fmt.Errorf("failed to expose slot: %w", err)
	}

	logger.Info("Slot exposed for exchange",
		zap.Int64("slot_id", slotID),
		zap.String("holder", callerID))

	slot.Status = model.SlotExchangeRequested
	return slot, nil
}

// ListExchangeable returns future slots the caller could claim: in
// exchange_requested state, held by someone else. The store already filters
// null-holder slots; an unassigned slot is a staffing gap, never an
// exchange opportunity.
func ListExchangeable(ctx context.Context, store db.SlotStore, callerID string) ([]ExchangeableSlot, error) {
	views, err := store.ListExchangeRequested(ctx, today())
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange requests: %w", err)
	}

	available := make([]ExchangeableSlot, 0, len(views))
	for _, v := range views {
		if v.WorkerID == nil || *v.WorkerID == callerID {
			continue
		}
		available = append(available, ExchangeableSlot{
			SlotID:     v.SlotID,
			Date:       v.Date,
			DayType:    v.DayType,
			SlotNumber: v.SlotNumber,
		})
	}

	return available, nil
}

// ClaimShift takes an exposed slot for the caller. The write is a single
// conditional update in the store; when two staff members race for the same
// slot exactly one wins and the other receives ErrConflict.
func ClaimShift(ctx context.Context, store db.SlotStore, logger *zap.Logger, slotID int64, callerID string) error {
	slot, err := store.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, db.ErrSlotNotFound) {
			return fmt.Errorf("%w: slot %d does not exist", ErrInvalidInput, slotID)
		}
		return fmt.Errorf("failed to load slot: %w", err)
	}

	if slot.HeldBy(callerID) {
		return fmt.Errorf("%w: cannot claim your own slot", ErrForbidden)
	}
	if slot.WorkerID == nil {
		// Open slots are fixed by the admin, not claimed through exchange.
		return fmt.Errorf("%w: slot has no holder to exchange with", ErrInvalidInput)
	}

	if err := store.ClaimSlot(ctx, slotID, callerID); err != nil {
		if errors.Is(err, db.ErrSlotTaken) {
			logger.Info("Claim lost to a concurrent claimant",
				zap.Int64("slot_id", slotID),
				zap.String("claimant", callerID))
			return fmt.Errorf("%w: shift was already taken", ErrConflict)
		}
		return fmt.Errorf("failed to claim slot: %w", err)
	}

	logger.Info("Shift claimed",
		zap.Int64("slot_id", slotID),
		zap.String("new_holder", callerID),
		zap.String("previous_holder", *slot.WorkerID))

	return nil
}

// CancelExchange reverts an exchange_requested slot back to assigned with
// the holder unchanged. The holder may cancel their own request; admins may
// cancel anyone's.
func CancelExchange(ctx context.Context, store db.SlotStore, logger *zap.Logger, slotID int64, callerID string, callerRole model.Role) (*model.ShiftSlot, error) {
	slot, err := store.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, db.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: slot %d does not exist", ErrInvalidInput, slotID)
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}

	if callerRole != model.RoleAdmin && !slot.HeldBy(callerID) {
		return nil, fmt.Errorf("%w: only the holder or an admin may cancel an exchange", ErrForbidden)
	}
	if slot.Status != model.SlotExchangeRequested {
		return nil, fmt.Errorf("%w: slot is %s, not %s", ErrConflict, slot.Status, model.SlotExchangeRequested)
	}

	if err := store.UpdateSlotStatus(ctx, slotID, model.SlotAssigned); err != nil {
		return nil, fmt.Errorf("failed to cancel exchange: %w", err)
	}

	logger.Info("Exchange cancelled",
		zap.Int64("slot_id", slotID),
		zap.String("caller", callerID))

	slot.Status = model.SlotAssigned
	return slot, nil
}

// AssignCoverage records an admin-arranged cover on a slot. The original
// holder stays on the record: the roster keeps who was scheduled and who
// actually served.
func AssignCoverage(ctx context.Context, store db.SlotStore, logger *zap.Logger, slotID int64, coveringWorkerID string, callerRole model.Role) (*model.ShiftSlot, error) {
	if callerRole != model.RoleAdmin {
		return nil, fmt.Errorf("%w: coverage assignment requires the %s role", ErrForbidden, model.RoleAdmin)
	}
	if coveringWorkerID == "" {
		return nil, fmt.Errorf("%w: covering worker id is required", ErrInvalidInput)
	}

	slot, err := store.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, db.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: slot %d does not exist", ErrInvalidInput, slotID)
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}

	if err := store.SetCoveringWorker(ctx, slotID, coveringWorkerID); err != nil {
		return nil, fmt.Errorf("failed to assign coverage: %w", err)
	}

	logger.Info("Coverage assigned",
		zap.Int64("slot_id", slotID),
		zap.String("covering_worker", coveringWorkerID))

	slot.Status = model.SlotAssigned
	slot.CoveringWorkerID = &coveringWorkerID
	return slot, nil
}

// MyShifts returns the caller's own future slots, assigned or pending
// exchange, in date order. This is what staff see before exposing a date.
func MyShifts(ctx context.Context, store db.SlotStore, callerID string) ([]db.SlotView, error) {
	views, err := store.ListWorkerSlots(ctx, callerID, today())
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return views, nil
}

// today returns the current UTC date at midnight, the horizon for all
// future-facing listings.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
