package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// AddWorker creates a scheduling record for a new servidora. Admin only.
// The directory collaborator owns the rest of the profile; the scheduler
// only ever sees these fields.
func AddWorker(ctx context.Context, store db.WorkerStore, logger *zap.Logger, name string, fridayEligible bool, role model.Role, callerRole model.Role) (*model.Worker, error) {
	if callerRole != model.RoleAdmin {
		return nil, fmt.Errorf("%w: creating workers requires the %s role", ErrForbidden, model.RoleAdmin)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: worker name is required", ErrInvalidInput)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	worker := model.Worker{
		ID:             uuid.New().String(),
		Name:           name,
		Active:         true,
		FridayEligible: fridayEligible,
		Participation:  model.ParticipationActive,
		Role:           role,
	}

	if err := store.InsertWorker(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to insert worker: %w", err)
	}

	logger.Info("Worker created",
		zap.String("worker_id", worker.ID),
		zap.String("name", worker.Name),
		zap.Bool("friday_eligible", worker.FridayEligible))

	return &worker, nil
}

// UpdateWorkerFlags changes the scheduling fields of a worker: active,
// Friday eligibility and participation status. Admin only. Deactivation is
// a soft delete; the worker keeps their historical slots.
func UpdateWorkerFlags(ctx context.Context, store db.WorkerStore, logger *zap.Logger, workerID string, active, fridayEligible bool, participation model.ParticipationStatus, callerRole model.Role) error {
	if callerRole != model.RoleAdmin {
		return fmt.Errorf("%w: editing workers requires the %s role", ErrForbidden, model.RoleAdmin)
	}
	switch participation {
	case model.ParticipationActive, model.ParticipationResting, model.ParticipationSuspended:
	default:
		return fmt.Errorf("%w: unknown participation status %q", ErrInvalidInput, participation)
	}

	if err := store.UpdateWorkerFlags(ctx, workerID, active, fridayEligible, participation); err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	logger.Info("Worker scheduling flags updated",
		zap.String("worker_id", workerID),
		zap.Bool("active", active),
		zap.Bool("friday_eligible", fridayEligible),
		zap.String("participation", string(participation)))

	return nil
}
