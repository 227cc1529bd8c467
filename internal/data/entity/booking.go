package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusDeclined  BookingStatus = "DECLINED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type BookingRequest struct {
	Base
	CustomerID      uuid.UUID       `db:"customer_id"`
	WorkerID        uuid.UUID       `db:"worker_id"` // worker profile id, not user id
	ServiceCategory ServiceCategory `db:"service_category"`
	Message         string          `db:"message"`
	ProposedDate    time.Time       `db:"proposed_date"`
	ProposedTime    string          `db:"proposed_time"`
	Status          BookingStatus   `db:"status"`
}

// CanTransition reports whether the given role may move a booking from its
// current status to target. Customers may only cancel, and only while the
// booking is still pending or accepted. Workers accept or decline pending
// bookings and complete accepted ones. DECLINED, COMPLETED and CANCELLED
// are terminal.
func CanTransition(role UserRole, current, target BookingStatus) bool {
	switch role {
	case RoleCustomer:
		if target != BookingStatusCancelled {
			return false
		}
		return current == BookingStatusPending || current == BookingStatusAccepted
	case RoleWorker:
		switch target {
		case BookingStatusAccepted, BookingStatusDeclined:
			return current == BookingStatusPending
		case BookingStatusCompleted:
			return current == BookingStatusAccepted
		}
	}
	return false
}
