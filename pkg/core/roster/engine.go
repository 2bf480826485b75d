package roster

import (
	"github.com/iglesia-cuna/cuna-roster/pkg/core/calendar"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

// SlotsPerDay is fixed: every operative date has exactly two positions.
const SlotsPerDay = 2

// Assignment is one produced slot: a worker, or nil when no eligible
// candidate existed and the slot is left open.
type Assignment struct {
	Date       calendar.OperativeDate
	SlotNumber int
	WorkerID   *string
	Status     model.SlotStatus
}

// Outcome is the result of one assignment run.
type Outcome struct {
	Assignments []Assignment
	Filled      int
	Open        int
}

// Assign fills two slots for each date, drawing Fridays from fridayPool and
// Sundays from generalPool. Dates are processed strictly in order and slot 1
// before slot 2: rotation state is sequential and must not be parallelized.
//
// Candidate preference: first a worker not yet used anywhere this month,
// then the pool front (repeats allowed once everyone has served). A worker
// already placed on the same date is never considered again for that date,
// and a Friday slot is never committed to a worker without the Friday
// eligibility flag, even if the pool was somehow mispopulated. An
// unfillable slot is recorded as open, not an error: understaffing must
// surface as data.
func Assign(dates []calendar.OperativeDate, fridayPool, generalPool *Pool) *Outcome {
	outcome := &Outcome{}

	// Scoped to this run only: separate generation calls must not share
	// fairness state.
	usedThisMonth := make(map[string]bool)

	for _, date := range dates {
		usedToday := make(map[string]bool)

		for slot := 1; slot <= SlotsPerDay; slot++ {
			pool := generalPool
			if date.DayType == model.DayFriday {
				pool = fridayPool
			}

			candidate := pickCandidate(pool, date.DayType, usedToday, usedThisMonth)
			if candidate == nil {
				outcome.Assignments = append(outcome.Assignments, Assignment{
					Date:       date,
					SlotNumber: slot,
					Status:     model.SlotOpen,
				})
				outcome.Open++
				continue
			}

			id := candidate.ID
			usedThisMonth[id] = true
			usedToday[id] = true
			pool.MoveToBack(id)
			outcome.Assignments = append(outcome.Assignments, Assignment{
				Date:       date,
				SlotNumber: slot,
				WorkerID:   &id,
				Status:     model.SlotAssigned,
			})
			outcome.Filled++
		}
	}

	return outcome
}

// pickCandidate selects the next worker from the pool, preferring one who
// has not served this month, falling back to the pool front.
func pickCandidate(pool *Pool, dayType model.DayType, usedToday, usedThisMonth map[string]bool) *model.Worker {
	var fallback *model.Worker

	for i := range pool.Candidates() {
		w := &pool.Candidates()[i]
		if usedToday[w.ID] {
			continue
		}
		// Eligibility is re-checked at commit time: an ineligible worker in
		// the Friday pool is a data inconsistency and must never be placed.
		if !w.SchedulableOn(dayType) {
			continue
		}
		if !usedThisMonth[w.ID] {
			return w
		}
		if fallback == nil {
			fallback = w
		}
	}

	return fallback
}
