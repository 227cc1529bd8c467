package wire

import (
	"locallink/internal/adaptor"
	"locallink/internal/data/entity"
	"locallink/pkg/middleware"
	"locallink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/reviews/workers/{workerId}/reviews", reviewHandler.GetWorkerReviews)

	// Protected routes (customer only)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(string(entity.RoleCustomer), log))

		r.Post("/api/reviews", reviewHandler.CreateReview)
	})
}
