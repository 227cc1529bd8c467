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

type ReviewService interface {
	CreateReview(ctx context.Context, customerID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetWorkerReviews(ctx context.Context, workerID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, customerID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, ErrInvalidRequest)
	}

	bookingUUID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, ErrInvalidRequest)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s %w", req.BookingID, ErrNotFound)
	}

	if booking.CustomerID != customerUUID {
		return nil, fmt.Errorf("you can only review your own bookings: %w", ErrForbidden)
	}

	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("can only review completed bookings: %w", ErrInvalidState)
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("review already exists for this booking: %w", ErrConflict)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReviewerID: customerUUID,
		WorkerID:   booking.WorkerID,
		BookingID:  bookingUUID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.String("worker_id", booking.WorkerID.String()),
		zap.Int("rating", req.Rating),
	)

	reviewer, _ := s.repo.User.FindByID(ctx, customerUUID)
	resp := response.ReviewToResponse(review, reviewer, booking)
	return &resp, nil
}

func (s *reviewService) GetWorkerReviews(ctx context.Context, workerID string) ([]response.ReviewResponse, error) {
	workerUUID, err := uuid.Parse(workerID)
	if err != nil {
		return nil, fmt.Errorf("invalid worker ID format %s: %w", workerID, ErrInvalidRequest)
	}

	worker, err := s.repo.Worker.FindByID(ctx, workerUUID)
	if err != nil {
		s.log.Error("Failed to find worker", zap.Error(err), zap.String("worker_id", workerID))
		return nil, fmt.Errorf("find worker: %w", err)
	}
	if worker == nil {
		return nil, fmt.Errorf("worker %s %w", workerID, ErrNotFound)
	}

	reviews, err := s.repo.Review.FindByWorkerID(ctx, workerUUID)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err), zap.String("worker_id", workerID))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewer, _ := s.repo.User.FindByID(ctx, review.ReviewerID)
		booking, _ := s.repo.Booking.FindByID(ctx, review.BookingID)
		reviewResponses[i] = response.ReviewToResponse(review, reviewer, booking)
	}

	s.log.Info("Worker reviews retrieved",
		zap.String("worker_id", workerID),
		zap.Int("count", len(reviews)),
	)

	return reviewResponses, nil
}
