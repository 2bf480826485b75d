package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

// OperativeDate is one service date of a month with its day type.
type OperativeDate struct {
	Date    time.Time
	DayType model.DayType
}

// OperativeDates returns every Friday and Sunday of the given month in
// ascending order. Dates are computed in UTC so the same (month, year)
// yields the same set regardless of server locale.
func OperativeDates(month, year int) ([]OperativeDate, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1900 || year > 9999 {
		return nil, fmt.Errorf("year must be a 4-digit year, got %d", year)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.FR, rrule.SU},
		Dtstart:   first,
		Until:     last,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	var dates []OperativeDate
	for _, d := range rule.All() {
		dates = append(dates, OperativeDate{
			Date:    d,
			DayType: dayTypeOf(d),
		})
	}

	return dates, nil
}

func dayTypeOf(d time.Time) model.DayType {
	if d.Weekday() == time.Friday {
		return model.DayFriday
	}
	return model.DaySunday
}
