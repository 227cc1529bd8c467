package repository

import (
	"context"
	"fmt"

	"locallink/internal/data/entity"
	"locallink/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Message, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, booking_id, sender_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.BookingID,
		message.SenderID,
		message.Text,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("booking_id", message.BookingID.String()),
			zap.String("sender_id", message.SenderID.String()),
		)
		return fmt.Errorf("create message on booking %s: %w", message.BookingID.String(), err)
	}

	return nil
}

func (r *messageRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Message, error) {
	query := `
		SELECT id, booking_id, sender_id, text, created_at
		FROM messages
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find messages by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find messages by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.BookingID,
			&message.SenderID,
			&message.Text,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
