package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	ReviewerID uuid.UUID `db:"reviewer_id"`
	WorkerID   uuid.UUID `db:"worker_id"` // worker profile id
	BookingID  uuid.UUID `db:"booking_id"`
	Rating     int       `db:"rating"` // 1-5
	Comment    string    `db:"comment"`
}
