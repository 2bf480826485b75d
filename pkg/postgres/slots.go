package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// UpsertSlots inserts or overwrites slot rows keyed by (day_id, slot_number).
// Regeneration is a destructive overwrite: coverage is reset along with the
// holder.
func (d *DB) UpsertSlots(ctx context.Context, slots []db.SlotUpsert) error {
	if len(slots) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range slots {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift_slot (day_id, slot_number, status, worker_id, covering_worker_id, updated_at)
			VALUES ($1, $2, $3, $4, NULL, NOW())
			ON CONFLICT (day_id, slot_number) DO UPDATE
			SET status = EXCLUDED.status,
			    worker_id = EXCLUDED.worker_id,
			    covering_worker_id = NULL,
			    updated_at = NOW()
		`, s.DayID, s.SlotNumber, s.Status, s.WorkerID)
		if err != nil {
			return fmt.Errorf("failed to upsert slot (%d, %d): %w", s.DayID, s.SlotNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSlot retrieves a single slot by id.
func (d *DB) GetSlot(ctx context.Context, slotID int64) (*model.ShiftSlot, error) {
	var s model.ShiftSlot
	err := d.pool.QueryRow(ctx, `
		SELECT id, day_id, slot_number, status, worker_id, covering_worker_id
		FROM shift_slot
		WHERE id = $1
	`, slotID).Scan(&s.ID, &s.DayID, &s.SlotNumber, &s.Status, &s.WorkerID, &s.CoveringWorkerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}

	return &s, nil
}

// UpdateSlotStatus sets the slot's status, leaving the holder untouched.
func (d *DB) UpdateSlotStatus(ctx context.Context, slotID int64, status model.SlotStatus) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift_slot SET status = $2, updated_at = NOW() WHERE id = $1
	`, slotID, status)
	if err != nil {
		return fmt.Errorf("failed to update slot status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrSlotNotFound
	}
	return nil
}

// ClaimSlot reassigns an exchange_requested slot to the claimant in a single
// conditional write. The status guard in the WHERE clause is what makes two
// concurrent claims resolve to exactly one winner: the loser's update
// matches zero rows and gets ErrSlotTaken.
func (d *DB) ClaimSlot(ctx context.Context, slotID int64, claimantID string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift_slot
		SET worker_id = $2,
		    status = 'assigned',
		    covering_worker_id = NULL,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'exchange_requested'
	`, slotID, claimantID)
	if err != nil {
		return fmt.Errorf("failed to claim slot: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return db.ErrSlotTaken
	}
	return nil
}

// SetCoveringWorker records who actually covers the slot. The original
// holder stays on the row so the audit trail of who was scheduled survives.
func (d *DB) SetCoveringWorker(ctx context.Context, slotID int64, coveringWorkerID string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift_slot
		SET covering_worker_id = $2,
		    status = 'assigned',
		    updated_at = NOW()
		WHERE id = $1
	`, slotID, coveringWorkerID)
	if err != nil {
		return fmt.Errorf("failed to set covering worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrSlotNotFound
	}
	return nil
}

const slotViewColumns = `
	s.id, s.slot_number, s.status, s.worker_id, s.covering_worker_id,
	c.date, c.day_type
`

// ListExchangeRequested returns slots open for claiming: exchange_requested
// state, non-null holder, on or after the given date. Slots with no holder
// are a staffing gap, not an exchange opportunity, and are filtered here.
func (d *DB) ListExchangeRequested(ctx context.Context, from time.Time) ([]db.SlotView, error) {
	return d.querySlotViews(ctx, `
		SELECT `+slotViewColumns+`
		FROM shift_slot s
		JOIN calendar_day c ON c.id = s.day_id
		WHERE s.status = 'exchange_requested'
		  AND s.worker_id IS NOT NULL
		  AND c.date >= $1
		ORDER BY c.date, s.slot_number
	`, from)
}

// ListWorkerSlots returns the slots a worker holds on or after the given date.
func (d *DB) ListWorkerSlots(ctx context.Context, workerID string, from time.Time) ([]db.SlotView, error) {
	return d.querySlotViews(ctx, `
		SELECT `+slotViewColumns+`
		FROM shift_slot s
		JOIN calendar_day c ON c.id = s.day_id
		WHERE s.worker_id = $2
		  AND c.date >= $1
		ORDER BY c.date, s.slot_number
	`, from, workerID)
}

// ListSlotsFrom returns every slot on or after the given date.
func (d *DB) ListSlotsFrom(ctx context.Context, from time.Time) ([]db.SlotView, error) {
	return d.querySlotViews(ctx, `
		SELECT `+slotViewColumns+`
		FROM shift_slot s
		JOIN calendar_day c ON c.id = s.day_id
		WHERE c.date >= $1
		ORDER BY c.date, s.slot_number
	`, from)
}

// CountOpenSlots counts unfilled slots on or after the given date.
func (d *DB) CountOpenSlots(ctx context.Context, from time.Time) (int, error) {
	var count int
	err := d.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM shift_slot s
		JOIN calendar_day c ON c.id = s.day_id
		WHERE s.status = 'open'
		  AND c.date >= $1
	`, from).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open slots: %w", err)
	}
	return count, nil
}

func (d *DB) querySlotViews(ctx context.Context, query string, args ...any) ([]db.SlotView, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	var views []db.SlotView
	for rows.Next() {
		var v db.SlotView
		if err := rows.Scan(&v.SlotID, &v.SlotNumber, &v.Status, &v.WorkerID,
			&v.CoveringWorkerID, &v.Date, &v.DayType); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slots: %w", err)
	}

	return views, nil
}
