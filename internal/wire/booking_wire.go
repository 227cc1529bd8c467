package wire

import (
	"locallink/internal/adaptor"
	"locallink/internal/data/entity"
	"locallink/pkg/middleware"
	"locallink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	messageHandler *adaptor.MessageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// Customers open bookings; both sides read and update them.
		r.With(middleware.RequireRole(string(entity.RoleCustomer), log)).
			Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings", bookingHandler.GetUserBookings)
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)

		// Messaging rides on the booking thread.
		r.Post("/api/bookings/{id}/messages", messageHandler.SendMessage)
		r.Get("/api/bookings/{id}/messages", messageHandler.GetMessages)
	})
}
