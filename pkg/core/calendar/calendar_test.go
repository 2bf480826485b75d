package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

func TestOperativeDates_February2026(t *testing.T) {
	// Reference calendar: February 2026 has Fridays on 6, 13, 20, 27 and
	// Sundays on 1, 8, 15, 22.
	dates, err := OperativeDates(2, 2026)
	require.NoError(t, err)

	expected := []struct {
		day     int
		dayType model.DayType
	}{
		{1, model.DaySunday},
		{6, model.DayFriday},
		{8, model.DaySunday},
		{13, model.DayFriday},
		{15, model.DaySunday},
		{20, model.DayFriday},
		{22, model.DaySunday},
		{27, model.DayFriday},
	}

	require.Len(t, dates, len(expected))
	for i, e := range expected {
		assert.Equal(t, time.February, dates[i].Date.Month())
		assert.Equal(t, 2026, dates[i].Date.Year())
		assert.Equal(t, e.day, dates[i].Date.Day())
		assert.Equal(t, e.dayType, dates[i].DayType)
	}
}

func TestOperativeDates_AscendingNoDuplicates(t *testing.T) {
	for month := 1; month <= 12; month++ {
		dates, err := OperativeDates(month, 2025)
		require.NoError(t, err)
		require.NotEmpty(t, dates)

		seen := make(map[string]bool)
		for i, d := range dates {
			key := d.Date.Format("2006-01-02")
			assert.False(t, seen[key], "duplicate date %s in month %d", key, month)
			seen[key] = true

			if i > 0 {
				assert.True(t, dates[i-1].Date.Before(d.Date),
					"dates out of order in month %d", month)
			}

			wd := d.Date.Weekday()
			assert.True(t, wd == time.Friday || wd == time.Sunday,
				"unexpected weekday %s in month %d", wd, month)
		}
	}
}

func TestOperativeDates_DayTypeMatchesWeekday(t *testing.T) {
	dates, err := OperativeDates(6, 2026)
	require.NoError(t, err)

	for _, d := range dates {
		if d.Date.Weekday() == time.Friday {
			assert.Equal(t, model.DayFriday, d.DayType)
		} else {
			assert.Equal(t, model.DaySunday, d.DayType)
		}
	}
}

func TestOperativeDates_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2026},
		{"month thirteen", 13, 2026},
		{"negative month", -1, 2026},
		{"year too small", 6, 187},
		{"year too large", 6, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OperativeDates(tt.month, tt.year)
			assert.Error(t, err)
		})
	}
}
