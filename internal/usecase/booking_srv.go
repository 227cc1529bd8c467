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

type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, role entity.UserRole, status *entity.BookingStatus) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, userID string, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, ErrInvalidRequest)
	}

	workerUUID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("invalid worker ID format %s: %w", req.WorkerID, ErrInvalidRequest)
	}

	proposedDate, err := parseProposedDate(req.ProposedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid proposed date %s: %w", req.ProposedDate, ErrInvalidRequest)
	}

	worker, err := s.repo.Worker.FindByID(ctx, workerUUID)
	if err != nil {
		s.log.Error("Failed to find worker", zap.Error(err), zap.String("worker_id", req.WorkerID))
		return nil, fmt.Errorf("find worker: %w", err)
	}
	if worker == nil {
		return nil, fmt.Errorf("worker %s %w", req.WorkerID, ErrNotFound)
	}

	if worker.UserID == customerUUID {
		return nil, fmt.Errorf("cannot book yourself: %w", ErrInvalidRequest)
	}

	now := time.Now()
	booking := &entity.BookingRequest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:      customerUUID,
		WorkerID:        workerUUID,
		ServiceCategory: entity.ServiceCategory(req.ServiceCategory),
		Message:         req.Message,
		ProposedDate:    proposedDate,
		ProposedTime:    req.ProposedTime,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.String("worker_id", req.WorkerID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID),
		zap.String("worker_id", req.WorkerID),
		zap.String("category", string(booking.ServiceCategory)),
	)

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, role entity.UserRole, status *entity.BookingStatus) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, ErrInvalidRequest)
	}

	var bookings []*entity.BookingRequest

	switch role {
	case entity.RoleCustomer:
		bookings, err = s.repo.Booking.FindByCustomerID(ctx, userUUID, status)
	case entity.RoleWorker:
		profile, perr := s.repo.Worker.FindByUserID(ctx, userUUID)
		if perr != nil {
			s.log.Error("Failed to load worker profile", zap.Error(perr), zap.String("user_id", userID))
			return nil, fmt.Errorf("load worker profile: %w", perr)
		}
		if profile == nil {
			return nil, fmt.Errorf("worker profile %w", ErrNotFound)
		}
		bookings, err = s.repo.Booking.FindByWorkerID(ctx, profile.ID, status)
	default:
		return nil, fmt.Errorf("unknown role %s: %w", role, ErrInvalidRequest)
	}

	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := s.buildBookingResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		bookingResponses = append(bookingResponses, *resp)
	}

	s.log.Info("Bookings retrieved",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
		zap.Int("count", len(bookingResponses)),
	)

	return bookingResponses, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, userID string, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, ErrInvalidRequest)
	}

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

	// Only the booking's customer or the worker-profile owner may touch it
	switch role {
	case entity.RoleCustomer:
		if booking.CustomerID != userUUID {
			return nil, fmt.Errorf("not authorized to modify this booking: %w", ErrForbidden)
		}
	case entity.RoleWorker:
		worker, werr := s.repo.Worker.FindByID(ctx, booking.WorkerID)
		if werr != nil {
			s.log.Error("Failed to load booking worker", zap.Error(werr), zap.String("booking_id", bookingID))
			return nil, fmt.Errorf("load booking worker: %w", werr)
		}
		if worker == nil || worker.UserID != userUUID {
			return nil, fmt.Errorf("not authorized to modify this booking: %w", ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("unknown role %s: %w", role, ErrInvalidRequest)
	}

	target := entity.BookingStatus(req.Status)

	if !entity.CanTransition(role, booking.Status, target) {
		return nil, fmt.Errorf("cannot move booking from %s to %s as %s: %w",
			booking.Status, target, role, ErrInvalidTransition)
	}

	// Conditional update; a lost race surfaces as a conflict rather than a
	// silent overwrite.
	changed, err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, target)
	if err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("target", string(target)),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if !changed {
		return nil, fmt.Errorf("booking status changed concurrently: %w", ErrConflict)
	}

	booking.Status = target
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(target)),
		zap.String("actor", userID),
		zap.String("role", string(role)),
	)

	return s.buildBookingResponse(ctx, booking)
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.BookingRequest) (*response.BookingResponse, error) {
	customer, err := s.repo.User.FindByID(ctx, booking.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load booking customer: %w", err)
	}

	var workerResp response.WorkerProfileResponse
	worker, err := s.repo.Worker.FindByID(ctx, booking.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("load booking worker: %w", err)
	}
	if worker != nil {
		owner, _ := s.repo.User.FindByID(ctx, worker.UserID)
		workerResp = response.WorkerToResponse(worker, owner)
	}

	review, err := s.repo.Review.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("check booking review: %w", err)
	}

	resp := response.BookingToResponse(booking, customer, workerResp, review != nil)
	return &resp, nil
}

func parseProposedDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
