package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/calendar"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/roster"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// GenerateRosterStore is the storage surface of a generation run.
type GenerateRosterStore interface {
	db.WorkerStore
	db.RosterStore
}

// GenerateResult summarises one generation run for the caller. Open slots
// are the understaffing signal: they are reported, never raised as errors.
type GenerateResult struct {
	Month       int
	Year        int
	Dates       int
	FilledSlots int
	OpenSlots   int
	FridayPool  int
	GeneralPool int
}

// GenerateRoster produces the full roster for a month: every Friday and
// Sunday, two slots each, assigned round-robin from the eligibility pools
// and upserted into storage. Only admins may generate. Regenerating a month
// overwrites its existing slots, including any exchange state.
func GenerateRoster(ctx context.Context, store GenerateRosterStore, logger *zap.Logger, month, year int, callerRole model.Role) (*GenerateResult, error) {
	if callerRole != model.RoleAdmin {
		return nil, fmt.Errorf("%w: roster generation requires the %s role", ErrForbidden, model.RoleAdmin)
	}

	dates, err := calendar.OperativeDates(month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logger.Info("Generating roster",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("dates", len(dates)))

	workers, err := store.GetActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}

	fridayPool, generalPool := roster.BuildPools(workers, true)
	logger.Debug("Pools built",
		zap.Int("friday_pool", fridayPool.Len()),
		zap.Int("general_pool", generalPool.Len()))

	outcome := roster.Assign(dates, fridayPool, generalPool)

	dayUpserts := make([]db.CalendarDayUpsert, len(dates))
	for i, d := range dates {
		dayUpserts[i] = db.CalendarDayUpsert{Date: d.Date, DayType: d.DayType}
	}

	dayIDs, err := store.UpsertCalendarDays(ctx, dayUpserts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert calendar days: %w", err)
	}

	slotUpserts := make([]db.SlotUpsert, 0, len(outcome.Assignments))
	for _, a := range outcome.Assignments {
		dayID, ok := dayIDs[a.Date.Date]
		if !ok {
			return nil, fmt.Errorf("no day id returned for %s", a.Date.Date.Format("2006-01-02"))
		}
		slotUpserts = append(slotUpserts, db.SlotUpsert{
			DayID:      dayID,
			SlotNumber: a.SlotNumber,
			Status:     a.Status,
			WorkerID:   a.WorkerID,
		})
	}

	if err := store.UpsertSlots(ctx, slotUpserts); err != nil {
		return nil, fmt.Errorf("failed to upsert slots: %w", err)
	}

	result := &GenerateResult{
		Month:       month,
		Year:        year,
		Dates:       len(dates),
		FilledSlots: outcome.Filled,
		OpenSlots:   outcome.Open,
		FridayPool:  fridayPool.Len(),
		GeneralPool: generalPool.Len(),
	}

	logger.Info("Roster generated",
		zap.Int("dates", result.Dates),
		zap.Int("filled_slots", result.FilledSlots),
		zap.Int("open_slots", result.OpenSlots))

	if result.OpenSlots > 0 {
		logger.Warn("Roster is understaffed", zap.Int("open_slots", result.OpenSlots))
	}

	return result, nil
}
