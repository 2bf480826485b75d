package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
)

// GetActiveWorkers retrieves all non-deactivated workers. Participation
// filtering is left to the pool builder so callers can also show resting
// workers in directory listings.
func (d *DB) GetActiveWorkers(ctx context.Context) ([]model.Worker, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, active, friday_eligible, participation, role
		FROM worker
		WHERE active = TRUE
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []model.Worker
	for rows.Next() {
		var w model.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Active, &w.FridayEligible, &w.Participation, &w.Role); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	return workers, nil
}

// InsertWorker creates a new scheduling record for a worker.
func (d *DB) InsertWorker(ctx context.Context, w model.Worker) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO worker (id, name, active, friday_eligible, participation, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, w.ID, w.Name, w.Active, w.FridayEligible, w.Participation, w.Role)
	if err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}

// UpdateWorkerFlags sets the scheduling fields of an existing worker.
func (d *DB) UpdateWorkerFlags(ctx context.Context, workerID string, active, fridayEligible bool, participation model.ParticipationStatus) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE worker
		SET active = $2, friday_eligible = $3, participation = $4
		WHERE id = $1
	`, workerID, active, fridayEligible, participation)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("worker %s not found", workerID)
	}
	return nil
}

// GetWorker retrieves a single worker by id.
func (d *DB) GetWorker(ctx context.Context, workerID string) (*model.Worker, error) {
	var w model.Worker
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, active, friday_eligible, participation, role
		FROM worker
		WHERE id = $1
	`, workerID).Scan(&w.ID, &w.Name, &w.Active, &w.FridayEligible, &w.Participation, &w.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("worker %s not found", workerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query worker: %w", err)
	}

	return &w, nil
}
