package services

import (
	"context"
	"fmt"
	"time"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// DashboardStore is the read surface of the dashboard rollup.
type DashboardStore interface {
	db.WorkerStore
	db.SlotStore
}

// UpcomingDay is one future operative date with its two slots.
type UpcomingDay struct {
	Date    time.Time
	DayType model.DayType
	Slots   []db.SlotView
}

// DashboardSummary is the read-only rollup consumed by presentation.
type DashboardSummary struct {
	ActiveWorkers  int
	FridayEligible int
	OpenSlots      int
	Upcoming       []UpcomingDay
}

// Dashboard aggregates worker counts, the open-slot backlog and the next
// few operative dates.
func Dashboard(ctx context.Context, store DashboardStore, upcomingDays int) (*DashboardSummary, error) {
	if upcomingDays < 1 {
		return nil, fmt.Errorf("%w: upcoming day count must be positive", ErrInvalidInput)
	}

	workers, err := store.GetActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}

	summary := &DashboardSummary{}
	for _, w := range workers {
		if w.Participation != model.ParticipationActive {
			continue
		}
		summary.ActiveWorkers++
		if w.FridayEligible {
			summary.FridayEligible++
		}
	}

	from := today()

	summary.OpenSlots, err = store.CountOpenSlots(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to count open slots: %w", err)
	}

	views, err := store.ListSlotsFrom(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming slots: %w", err)
	}

	for _, v := range views {
		n := len(summary.Upcoming)
		if n == 0 || !summary.Upcoming[n-1].Date.Equal(v.Date) {
			if n == upcomingDays {
				break
			}
			summary.Upcoming = append(summary.Upcoming, UpcomingDay{
				Date:    v.Date,
				DayType: v.DayType,
			})
			n++
		}
		summary.Upcoming[n-1].Slots = append(summary.Upcoming[n-1].Slots, v)
	}

	return summary, nil
}
