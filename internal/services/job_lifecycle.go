package services

import (
	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"
)

// forwardStep maps each status to its single legal successor.
var forwardStep = map[entities.JobStatus]entities.JobStatus{
	entities.StatusPending:    entities.StatusInProgress,
	entities.StatusInProgress: entities.StatusDone,
	entities.StatusDone:       entities.StatusDelivered,
}

// CanTransition decides whether a status change is legal. The lifecycle is
// forward-only and single-step: Pending -> In Progress -> Done -> Delivered.
// Mechanics may start and complete work; handing a car back to the customer
// (Done -> Delivered) is a manager action. Managers may additionally force
// any target status, which is the explicit override for correcting mistakes.
func CanTransition(from, to entities.JobStatus, role string, force bool) error {
	if !to.Valid() {
		return apperrors.NewInvalidInputError("unknown status %q", string(to))
	}
	if from == to {
		return nil
	}
	if force {
		if role != entities.RoleManager {
			return apperrors.ErrManagerOnly
		}
		return nil
	}
	if forwardStep[from] != to {
		return apperrors.NewInvalidInputError("cannot move job from %q to %q", string(from), string(to))
	}
	if to == entities.StatusDelivered && role != entities.RoleManager {
		return apperrors.ErrManagerOnly
	}
	return nil
}
