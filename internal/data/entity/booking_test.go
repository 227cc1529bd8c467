package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []BookingStatus{
		BookingStatusPending,
		BookingStatusAccepted,
		BookingStatusDeclined,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}

	type move struct {
		role UserRole
		from BookingStatus
		to   BookingStatus
	}

	allowed := map[move]bool{
		{RoleWorker, BookingStatusPending, BookingStatusAccepted}:      true,
		{RoleWorker, BookingStatusPending, BookingStatusDeclined}:      true,
		{RoleWorker, BookingStatusAccepted, BookingStatusCompleted}:    true,
		{RoleCustomer, BookingStatusPending, BookingStatusCancelled}:   true,
		{RoleCustomer, BookingStatusAccepted, BookingStatusCancelled}:  true,
	}

	// Everything not in the allow list must be rejected, including all
	// moves out of the three terminal statuses.
	for _, role := range []UserRole{RoleCustomer, RoleWorker} {
		for _, from := range statuses {
			for _, to := range statuses {
				got := CanTransition(role, from, to)
				want := allowed[move{role, from, to}]
				assert.Equal(t, want, got, "%s: %s -> %s", role, from, to)
			}
		}
	}
}

func TestCanTransitionUnknownRole(t *testing.T) {
	assert.False(t, CanTransition(UserRole("ADMIN"), BookingStatusPending, BookingStatusAccepted))
}
