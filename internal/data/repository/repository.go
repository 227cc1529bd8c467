package repository

import (
	"locallink/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Worker  WorkerRepository
	Booking BookingRepository
	Message MessageRepository
	Review  ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Worker:  NewWorkerRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Message: NewMessageRepository(db, log),
		Review:  NewReviewRepository(db, log),
	}
}
