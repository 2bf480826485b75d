package model

import "time"

type Role string

const (
	RoleAdmin Role = "responsable"
	RoleStaff Role = "servidora"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// ParticipationStatus is the worker's standing within the service rotation.
// Only "active" workers enter the assignment pools.
type ParticipationStatus string

const (
	ParticipationActive    ParticipationStatus = "active"
	ParticipationResting   ParticipationStatus = "resting"
	ParticipationSuspended ParticipationStatus = "suspended"
)

type DayType string

const (
	DayFriday DayType = "friday"
	DaySunday DayType = "sunday"
)

type SlotStatus string

const (
	SlotAssigned          SlotStatus = "assigned"
	SlotOpen              SlotStatus = "open"
	SlotExchangeRequested SlotStatus = "exchange_requested"
)

// Worker represents a servidora as the scheduler sees her: the directory
// service owns the full profile, the scheduler only reads these fields.
type Worker struct {
	ID             string
	Name           string
	Active         bool
	FridayEligible bool
	Participation  ParticipationStatus
	Role           Role
}

// SchedulableOn reports whether the worker may enter the pool for the given
// day type. Friday eligibility is authoritative, never inferred.
func (w Worker) SchedulableOn(dayType DayType) bool {
	if !w.Active || w.Participation != ParticipationActive {
		return false
	}
	if dayType == DayFriday {
		return w.FridayEligible
	}
	return true
}

// CalendarDay represents one operative date of the service. At most one row
// exists per date (upsert key).
type CalendarDay struct {
	ID      int64
	Date    time.Time
	DayType DayType
	Enabled bool
}

// ShiftSlot is one of the two daily assignment positions. WorkerID is the
// original holder; CoveringWorkerID is set when an admin arranges cover
// without rewriting who was scheduled.
type ShiftSlot struct {
	ID               int64
	DayID            int64
	SlotNumber       int
	Status           SlotStatus
	WorkerID         *string
	CoveringWorkerID *string
}

// HeldBy reports whether the slot's original holder is the given worker.
func (s ShiftSlot) HeldBy(workerID string) bool {
	return s.WorkerID != nil && *s.WorkerID == workerID
}
