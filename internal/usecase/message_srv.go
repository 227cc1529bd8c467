package usecase

import (
	"context"
	"fmt"
	"time"

	"locallink/internal/data/entity"
	"locallink/internal/data/repository"
	"locallink/internal/dto/request"
	"locallink/internal/dto/response"
	"locallink/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageService interface {
	SendMessage(ctx context.Context, senderID, bookingID string, req *request.SendMessageRequest) (*response.MessageResponse, error)
	GetMessages(ctx context.Context, userID, bookingID string) ([]response.MessageResponse, error)
}

type messageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMessageService(repo *repository.Repository, log *zap.Logger) MessageService {
	return &messageService{
		repo: repo,
		log:  log.With(zap.String("service", "message")),
	}
}

func (s *messageService) SendMessage(ctx context.Context, senderID, bookingID string, req *request.SendMessageRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	senderUUID, err := uuid.Parse(senderID)
	if err != nil {
		return nil, fmt.Errorf("invalid sender ID format %s: %w", senderID, ErrInvalidRequest)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	participant, err := s.isParticipant(ctx, booking, senderUUID)
	if err != nil {
		return nil, err
	}
	if !participant {
		return nil, fmt.Errorf("not authorized to message on this booking: %w", ErrForbidden)
	}

	// Messaging opens once the worker accepts and stays open after completion
	if booking.Status != entity.BookingStatusAccepted && booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("can only message on accepted or completed bookings: %w", ErrInvalidState)
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: booking.ID,
		SenderID:  senderUUID,
		Text:      req.Text,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("sender_id", senderID),
		)
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.Info("Message sent",
		zap.String("message_id", message.ID.String()),
		zap.String("booking_id", bookingID),
		zap.String("sender_id", senderID),
	)

	sender, _ := s.repo.User.FindByID(ctx, senderUUID)
	resp := response.MessageToResponse(message, sender)
	return &resp, nil
}

func (s *messageService) GetMessages(ctx context.Context, userID, bookingID string) ([]response.MessageResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, ErrInvalidRequest)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	participant, err := s.isParticipant(ctx, booking, userUUID)
	if err != nil {
		return nil, err
	}
	if !participant {
		return nil, fmt.Errorf("not authorized to view messages on this booking: %w", ErrForbidden)
	}

	messages, err := s.repo.Message.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load messages", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("load messages: %w", err)
	}

	// Both participants send; look each sender up once
	senders := make(map[uuid.UUID]*entity.User)
	messageResponses := make([]response.MessageResponse, len(messages))
	for i, message := range messages {
		sender, ok := senders[message.SenderID]
		if !ok {
			sender, _ = s.repo.User.FindByID(ctx, message.SenderID)
			senders[message.SenderID] = sender
		}
		messageResponses[i] = response.MessageToResponse(message, sender)
	}

	return messageResponses, nil
}

// ==================== HELPER METHODS ====================

func (s *messageService) loadBooking(ctx context.Context, bookingID string) (*entity.BookingRequest, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, ErrInvalidRequest)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s %w", bookingID, ErrNotFound)
	}

	return booking, nil
}

func (s *messageService) isParticipant(ctx context.Context, booking *entity.BookingRequest, userID uuid.UUID) (bool, error) {
	if booking.CustomerID == userID {
		return true, nil
	}

	worker, err := s.repo.Worker.FindByID(ctx, booking.WorkerID)
	if err != nil {
		s.log.Error("Failed to load booking worker", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return false, fmt.Errorf("load booking worker: %w", err)
	}

	return worker != nil && worker.UserID == userID, nil
}
