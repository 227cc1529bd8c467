package usecase

import (
	"locallink/internal/data/repository"
	"locallink/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Worker  WorkerService
	Booking BookingService
	Message MessageService
	Review  ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Worker:  NewWorkerService(repo, config, log),
		Booking: NewBookingService(repo, log),
		Message: NewMessageService(repo, log),
		Review:  NewReviewService(repo, log),
	}
}
