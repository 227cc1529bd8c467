package wire

import (
	"locallink/internal/adaptor"
	"locallink/internal/data/entity"
	"locallink/pkg/middleware"
	"locallink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWorker(
	r chi.Router,
	workerHandler *adaptor.WorkerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/workers/search", workerHandler.Search)
	r.Get("/api/workers/{id}", workerHandler.GetWorker)

	// Protected routes (worker only)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(string(entity.RoleWorker), log))

		r.Post("/api/workers/profile", workerHandler.CreateProfile)
		r.Put("/api/workers/profile", workerHandler.UpdateProfile)
	})
}
