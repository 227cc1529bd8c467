package entity

import (
	"github.com/google/uuid"
)

type Message struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	SenderID  uuid.UUID `db:"sender_id"`
	Text      string    `db:"text"`
}
