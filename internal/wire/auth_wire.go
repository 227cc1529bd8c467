package wire

import (
	"locallink/internal/adaptor"
	"locallink/pkg/middleware"
	"locallink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	r.With(middleware.Auth(config.JWT.Secret, log)).Get("/api/auth/me", authHandler.Me)
}
