package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"locallink/internal/data/entity"
	"locallink/internal/data/repository"
	"locallink/internal/dto/request"
	"locallink/internal/dto/response"
	"locallink/pkg/geo"
	"locallink/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WorkerService interface {
	CreateProfile(ctx context.Context, userID string, req *request.CreateWorkerProfileRequest) (*response.WorkerProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateWorkerProfileRequest) (*response.WorkerProfileResponse, error)
	GetWorker(ctx context.Context, workerID string) (*response.WorkerDetailResponse, error)
	Search(ctx context.Context, req *request.SearchWorkersRequest) ([]response.WorkerSearchResult, error)
}

type workerService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewWorkerService(repo *repository.Repository, config *utils.Config, log *zap.Logger) WorkerService {
	return &workerService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "worker")),
	}
}

func (s *workerService) CreateProfile(ctx context.Context, userID string, req *request.CreateWorkerProfileRequest) (*response.WorkerProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, ErrInvalidRequest)
	}

	existing, err := s.repo.Worker.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to check existing profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("check existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("worker profile already exists: %w", ErrConflict)
	}

	radius := float64(entity.DefaultRadiusMiles)
	if req.RadiusMiles != nil {
		radius = *req.RadiusMiles
	}

	now := time.Now()
	profile := &entity.WorkerProfile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            userUUID,
		Bio:               req.Bio,
		ServiceCategory:   entity.ServiceCategory(req.ServiceCategory),
		HourlyRate:        req.HourlyRate,
		LocationLat:       *req.LocationLat,
		LocationLng:       *req.LocationLng,
		Neighborhood:      req.Neighborhood,
		RadiusMiles:       radius,
		IsVerified:        false,
		VerificationBadge: entity.BadgeNone,
		AvailabilityNotes: req.AvailabilityNotes,
	}

	if err := s.repo.Worker.Create(ctx, profile); err != nil {
		s.log.Error("Failed to create worker profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("create worker profile: %w", err)
	}

	s.log.Info("Worker profile created",
		zap.String("profile_id", profile.ID.String()),
		zap.String("user_id", userID),
		zap.String("category", string(profile.ServiceCategory)),
	)

	owner, _ := s.repo.User.FindByID(ctx, userUUID)
	resp := response.WorkerToResponse(profile, owner)
	return &resp, nil
}

func (s *workerService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateWorkerProfileRequest) (*response.WorkerProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, ErrInvalidRequest)
	}

	profile, err := s.repo.Worker.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load worker profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("load worker profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("worker profile %w", ErrNotFound)
	}

	// Merge only the fields the caller sent
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ServiceCategory != nil {
		profile.ServiceCategory = entity.ServiceCategory(*req.ServiceCategory)
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = req.HourlyRate
	}
	if req.LocationLat != nil {
		profile.LocationLat = *req.LocationLat
	}
	if req.LocationLng != nil {
		profile.LocationLng = *req.LocationLng
	}
	if req.Neighborhood != nil {
		profile.Neighborhood = *req.Neighborhood
	}
	if req.RadiusMiles != nil {
		profile.RadiusMiles = *req.RadiusMiles
	}
	if req.AvailabilityNotes != nil {
		profile.AvailabilityNotes = req.AvailabilityNotes
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Worker.Update(ctx, profile); err != nil {
		s.log.Error("Failed to update worker profile", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, fmt.Errorf("update worker profile: %w", err)
	}

	s.log.Info("Worker profile updated",
		zap.String("profile_id", profile.ID.String()),
		zap.String("user_id", userID),
	)

	owner, _ := s.repo.User.FindByID(ctx, userUUID)
	resp := response.WorkerToResponse(profile, owner)
	return &resp, nil
}

func (s *workerService) GetWorker(ctx context.Context, workerID string) (*response.WorkerDetailResponse, error) {
	workerUUID, err := uuid.Parse(workerID)
	if err != nil {
		return nil, fmt.Errorf("invalid worker ID format %s: %w", workerID, ErrInvalidRequest)
	}

	profile, err := s.repo.Worker.FindByID(ctx, workerUUID)
	if err != nil {
		s.log.Error("Failed to find worker", zap.Error(err), zap.String("worker_id", workerID))
		return nil, fmt.Errorf("find worker: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("worker %s %w", workerID, ErrNotFound)
	}

	owner, err := s.repo.User.FindByID(ctx, profile.UserID)
	if err != nil {
		s.log.Error("Failed to load profile owner", zap.Error(err), zap.String("worker_id", workerID))
		return nil, fmt.Errorf("load profile owner: %w", err)
	}

	reviews, err := s.repo.Review.FindByWorkerID(ctx, workerUUID)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err), zap.String("worker_id", workerID))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	ratingSum := 0
	for i, review := range reviews {
		reviewer, _ := s.repo.User.FindByID(ctx, review.ReviewerID)
		reviewResponses[i] = response.ReviewToResponse(review, reviewer, nil)
		ratingSum += review.Rating
	}

	averageRating := 0.0
	if len(reviews) > 0 {
		averageRating = geo.Round1(float64(ratingSum) / float64(len(reviews)))
	}

	return &response.WorkerDetailResponse{
		WorkerProfileResponse: response.WorkerToResponse(profile, owner),
		AverageRating:         averageRating,
		ReviewCount:           len(reviews),
		Reviews:               reviewResponses,
	}, nil
}

func (s *workerService) Search(ctx context.Context, req *request.SearchWorkersRequest) ([]response.WorkerSearchResult, error) {
	if req.Radius == 0 {
		req.Radius = entity.DefaultRadiusMiles
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed (%s): %w", utils.FormatValidationErrors(errs), ErrInvalidRequest)
	}

	var category *entity.ServiceCategory
	if req.Category != nil {
		c := entity.ServiceCategory(*req.Category)
		category = &c
	}

	// Phase one: coarse rectangular window around the origin.
	box := geo.NewBoundingBox(*req.Lat, *req.Lng, req.Radius, s.config.Geo.MilesPerDegreeLat)

	candidates, err := s.repo.Worker.FindInBoundingBox(ctx, box, category, req.VerifiedOnly)
	if err != nil {
		s.log.Error("Failed to search workers", zap.Error(err))
		return nil, fmt.Errorf("search workers: %w", err)
	}

	// Phase two: exact great-circle distance, then rating filter.
	results := make([]response.WorkerSearchResult, 0, len(candidates))
	for _, profile := range candidates {
		distance := geo.Haversine(*req.Lat, *req.Lng, profile.LocationLat, profile.LocationLng, s.config.Geo.EarthRadiusMiles)
		if distance > req.Radius {
			continue
		}

		ratings, err := s.repo.Review.RatingsByWorkerID(ctx, profile.ID)
		if err != nil {
			s.log.Error("Failed to load ratings", zap.Error(err), zap.String("worker_id", profile.ID.String()))
			return nil, fmt.Errorf("load ratings: %w", err)
		}

		averageRating := 0.0
		if len(ratings) > 0 {
			sum := 0
			for _, rating := range ratings {
				sum += rating
			}
			averageRating = geo.Round1(float64(sum) / float64(len(ratings)))
		}

		if req.MinRating != nil && averageRating < *req.MinRating {
			continue
		}

		owner, _ := s.repo.User.FindByID(ctx, profile.UserID)

		results = append(results, response.WorkerSearchResult{
			WorkerProfileResponse: response.WorkerToResponse(profile, owner),
			Distance:              geo.Round1(distance),
			AverageRating:         averageRating,
			ReviewCount:           len(ratings),
		})
	}

	// Closest first; stable so equal distances keep candidate order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	s.log.Info("Worker search completed",
		zap.Float64("lat", *req.Lat),
		zap.Float64("lng", *req.Lng),
		zap.Float64("radius", req.Radius),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)

	return results, nil
}
