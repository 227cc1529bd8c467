package response

import (
	"time"

	"locallink/internal/data/entity"
)

type MessageResponse struct {
	ID        string      `json:"id"`
	BookingID string      `json:"booking_id"`
	SenderID  string      `json:"sender_id"`
	Text      string      `json:"text"`
	Sender    UserSummary `json:"sender"`
	CreatedAt time.Time   `json:"created_at"`
}

// Helper converter
func MessageToResponse(message *entity.Message, sender *entity.User) MessageResponse {
	return MessageResponse{
		ID:        message.ID.String(),
		BookingID: message.BookingID.String(),
		SenderID:  message.SenderID.String(),
		Text:      message.Text,
		Sender:    UserToSummary(sender),
		CreatedAt: message.CreatedAt,
	}
}
