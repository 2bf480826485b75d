package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/calendar"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

func monthDates(t *testing.T, month, year int) []calendar.OperativeDate {
	t.Helper()
	dates, err := calendar.OperativeDates(month, year)
	require.NoError(t, err)
	return dates
}

func fridaysOf(dates []calendar.OperativeDate) []calendar.OperativeDate {
	var fridays []calendar.OperativeDate
	for _, d := range dates {
		if d.DayType == model.DayFriday {
			fridays = append(fridays, d)
		}
	}
	return fridays
}

func TestAssign_TwoSlotsPerDay(t *testing.T) {
	dates := monthDates(t, 2, 2026)
	workers := []model.Worker{
		activeWorker("a", true),
		activeWorker("b", true),
		activeWorker("c", true),
		activeWorker("d", true),
	}
	fridayPool, generalPool := BuildPools(workers, false)

	outcome := Assign(dates, fridayPool, generalPool)

	require.Len(t, outcome.Assignments, len(dates)*SlotsPerDay)
	for i := 0; i < len(outcome.Assignments); i += SlotsPerDay {
		assert.Equal(t, 1, outcome.Assignments[i].SlotNumber)
		assert.Equal(t, 2, outcome.Assignments[i+1].SlotNumber)
		assert.Equal(t, outcome.Assignments[i].Date, outcome.Assignments[i+1].Date)
	}
}

func TestAssign_NoSameDayDoubleBooking(t *testing.T) {
	dates := monthDates(t, 2, 2026)
	workers := []model.Worker{
		activeWorker("a", true),
		activeWorker("b", true),
		activeWorker("c", true),
	}
	fridayPool, generalPool := BuildPools(workers, true)

	outcome := Assign(dates, fridayPool, generalPool)

	byDate := make(map[string][]string)
	for _, a := range outcome.Assignments {
		if a.WorkerID != nil {
			key := a.Date.Date.Format("2006-01-02")
			byDate[key] = append(byDate[key], *a.WorkerID)
		}
	}
	for date, ids := range byDate {
		if len(ids) == 2 {
			assert.NotEqual(t, ids[0], ids[1], "double booking on %s", date)
		}
	}
}

func TestAssign_FridaySlotsOnlyEligibleWorkers(t *testing.T) {
	dates := monthDates(t, 2, 2026)
	eligible := map[string]bool{"f1": true, "f2": true}
	workers := []model.Worker{
		activeWorker("f1", true),
		activeWorker("f2", true),
		activeWorker("s1", false),
		activeWorker("s2", false),
	}
	fridayPool, generalPool := BuildPools(workers, true)

	outcome := Assign(dates, fridayPool, generalPool)

	for _, a := range outcome.Assignments {
		if a.Date.DayType == model.DayFriday && a.WorkerID != nil {
			assert.True(t, eligible[*a.WorkerID],
				"ineligible worker %s assigned on Friday %s", *a.WorkerID, a.Date.Date)
		}
	}
}

func TestAssign_FridayEligibilityRecheckedAtCommit(t *testing.T) {
	// A mispopulated friday pool must never leak an ineligible worker into
	// a Friday slot; the slot goes open instead.
	dates := fridaysOf(monthDates(t, 2, 2026))
	impostor := activeWorker("impostor", false)
	fridayPool := NewPool([]model.Worker{impostor}, false)
	generalPool := NewPool([]model.Worker{impostor}, false)

	outcome := Assign(dates, fridayPool, generalPool)

	assert.Equal(t, 0, outcome.Filled)
	for _, a := range outcome.Assignments {
		assert.Equal(t, model.SlotOpen, a.Status)
		assert.Nil(t, a.WorkerID)
	}
}

func TestAssign_RoundRobinFairness(t *testing.T) {
	// 3 Friday-eligible workers across 4 Fridays (8 slots): every worker
	// must serve before anyone repeats.
	fridays := fridaysOf(monthDates(t, 2, 2026))
	require.Len(t, fridays, 4)

	workers := []model.Worker{
		activeWorker("a", true),
		activeWorker("b", true),
		activeWorker("c", true),
	}
	fridayPool, generalPool := BuildPools(workers, true)

	outcome := Assign(fridays, fridayPool, generalPool)

	counts := make(map[string]int)
	for _, a := range outcome.Assignments {
		require.NotNil(t, a.WorkerID, "slot unexpectedly open")
		counts[*a.WorkerID]++

		// No worker may reach a second assignment while another has none.
		if counts[*a.WorkerID] == 2 {
			assert.Len(t, counts, len(workers),
				"worker %s repeated before everyone served once", *a.WorkerID)
		}
	}

	// 8 slots over 3 workers: nobody serves more than 3 times.
	for id, n := range counts {
		assert.LessOrEqual(t, n, 3, "worker %s over-assigned", id)
		assert.GreaterOrEqual(t, n, 2, "worker %s under-assigned", id)
	}
}

func TestAssign_NoFridayEligibleWorkers(t *testing.T) {
	dates := monthDates(t, 2, 2026)
	workers := []model.Worker{
		activeWorker("s1", false),
		activeWorker("s2", false),
	}
	fridayPool, generalPool := BuildPools(workers, true)

	outcome := Assign(dates, fridayPool, generalPool)

	for _, a := range outcome.Assignments {
		if a.Date.DayType == model.DayFriday {
			assert.Equal(t, model.SlotOpen, a.Status)
			assert.Nil(t, a.WorkerID)
		} else {
			assert.Equal(t, model.SlotAssigned, a.Status)
			require.NotNil(t, a.WorkerID)
		}
	}

	fridayCount := len(fridaysOf(dates))
	assert.Equal(t, fridayCount*SlotsPerDay, outcome.Open)
}

func TestAssign_EmptyPools(t *testing.T) {
	dates := monthDates(t, 2, 2026)
	fridayPool, generalPool := BuildPools(nil, false)

	outcome := Assign(dates, fridayPool, generalPool)

	assert.Equal(t, 0, outcome.Filled)
	assert.Equal(t, len(dates)*SlotsPerDay, outcome.Open)
}

func TestAssign_SingleWorkerFillsOnlyOneSlotPerDay(t *testing.T) {
	dates := monthDates(t, 2, 2026)
	workers := []model.Worker{activeWorker("solo", true)}
	fridayPool, generalPool := BuildPools(workers, false)

	outcome := Assign(dates, fridayPool, generalPool)

	// Slot 1 filled, slot 2 open, on every date.
	for i := 0; i < len(outcome.Assignments); i += SlotsPerDay {
		require.NotNil(t, outcome.Assignments[i].WorkerID)
		assert.Equal(t, "solo", *outcome.Assignments[i].WorkerID)
		assert.Equal(t, model.SlotOpen, outcome.Assignments[i+1].Status)
	}
}

func TestAssign_FilledPlusOpenEqualsTotal(t *testing.T) {
	dates := monthDates(t, 7, 2026)
	workers := []model.Worker{
		activeWorker("a", true),
		activeWorker("b", false),
	}
	fridayPool, generalPool := BuildPools(workers, true)

	outcome := Assign(dates, fridayPool, generalPool)

	assert.Equal(t, len(dates)*SlotsPerDay, outcome.Filled+outcome.Open)
}
