package db

import (
	"time"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

// CalendarDayUpsert is the idempotent key + payload for a calendar row.
type CalendarDayUpsert struct {
	Date    time.Time
	DayType model.DayType
}

// SlotUpsert is one slot row produced by a generation run, keyed by
// (DayID, SlotNumber).
type SlotUpsert struct {
	DayID      int64
	SlotNumber int
	Status     model.SlotStatus
	WorkerID   *string
}

// SlotView is a slot joined with its calendar day, the shape read back for
// exchange listings, dashboards and exports.
type SlotView struct {
	SlotID           int64
	SlotNumber       int
	Status           model.SlotStatus
	WorkerID         *string
	CoveringWorkerID *string
	Date             time.Time
	DayType          model.DayType
}
