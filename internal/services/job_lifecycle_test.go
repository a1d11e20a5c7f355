package services

import (
	"testing"

	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardSteps(t *testing.T) {
	assert.NoError(t, CanTransition(entities.StatusPending, entities.StatusInProgress, entities.RoleMechanic, false))
	assert.NoError(t, CanTransition(entities.StatusInProgress, entities.StatusDone, entities.RoleMechanic, false))
	assert.NoError(t, CanTransition(entities.StatusDone, entities.StatusDelivered, entities.RoleManager, false))
}

func TestCanTransition_DeliveredIsManagerOnly(t *testing.T) {
	err := CanTransition(entities.StatusDone, entities.StatusDelivered, entities.RoleMechanic, false)
	assert.ErrorIs(t, err, apperrors.ErrManagerOnly)
}

func TestCanTransition_NoSkippingOrBackwards(t *testing.T) {
	cases := []struct {
		from, to entities.JobStatus
	}{
		{entities.StatusPending, entities.StatusDone},
		{entities.StatusPending, entities.StatusDelivered},
		{entities.StatusInProgress, entities.StatusDelivered},
		{entities.StatusDone, entities.StatusPending},
		{entities.StatusDelivered, entities.StatusDone},
		{entities.StatusInProgress, entities.StatusPending},
	}
	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to, entities.RoleManager, false)
		assert.Error(t, err, "expected %s -> %s to be rejected", tc.from, tc.to)
	}
}

func TestCanTransition_SameStatusIsNoop(t *testing.T) {
	for _, s := range entities.KnownStatuses {
		assert.NoError(t, CanTransition(s, s, entities.RoleMechanic, false))
	}
}

func TestCanTransition_ForceOverride(t *testing.T) {
	// Managers can correct any mistake with the explicit override.
	assert.NoError(t, CanTransition(entities.StatusDelivered, entities.StatusPending, entities.RoleManager, true))
	assert.NoError(t, CanTransition(entities.StatusPending, entities.StatusDelivered, entities.RoleManager, true))

	// Mechanics never can.
	err := CanTransition(entities.StatusDelivered, entities.StatusPending, entities.RoleMechanic, true)
	assert.ErrorIs(t, err, apperrors.ErrManagerOnly)
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	err := CanTransition(entities.StatusPending, entities.JobStatus("Scrapped"), entities.RoleManager, false)
	assert.Error(t, err)
}
