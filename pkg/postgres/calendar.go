package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// UpsertCalendarDays inserts calendar days keyed by date. Re-running for the
// same month is a no-op on existing rows; the returned map carries the day
// id for every input date.
func (d *DB) UpsertCalendarDays(ctx context.Context, days []db.CalendarDayUpsert) (map[time.Time]int64, error) {
	ids := make(map[time.Time]int64, len(days))
	if len(days) == 0 {
		return ids, nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, day := range days {
		var id int64
		// DO UPDATE instead of DO NOTHING so RETURNING always yields the id.
		err := tx.QueryRow(ctx, `
			INSERT INTO calendar_day (date, day_type, enabled)
			VALUES ($1, $2, TRUE)
			ON CONFLICT (date) DO UPDATE SET day_type = EXCLUDED.day_type
			RETURNING id
		`, day.Date, day.DayType).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert calendar day %s: %w",
				day.Date.Format("2006-01-02"), err)
		}
		ids[day.Date] = id
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return ids, nil
}
