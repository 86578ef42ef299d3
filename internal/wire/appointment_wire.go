package wire

import (
	"time"

	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireAppointment(
	r chi.Router,
	appointmentHandler *adaptor.AppointmentHandler,
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	rateLimit := middleware.RateLimit(
		rdb,
		config.RateLimit.Limit,
		time.Duration(config.RateLimit.WindowSeconds)*time.Second,
		log,
	)

	// ==================== PUBLIC ROUTES (rate limited) ====================
	r.Group(func(r chi.Router) {
		r.Use(rateLimit)

		// GET /appointments/available-times/{date} - day's slots with occupancy
		r.Get("/appointments/available-times/{date}", appointmentHandler.AvailableTimes)

		// POST /appointments - public booking flow
		r.Post("/appointments", appointmentHandler.CreateAppointment)
	})

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /my-appointments - appointments matching the logged-in user's email
		r.Get("/my-appointments", appointmentHandler.MyAppointments)

		// PATCH /appointments/{id}/status - status transition
		r.Patch("/appointments/{id}/status", appointmentHandler.UpdateStatus)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /appointments - full ledger listing (admin)
		r.Get("/appointments", appointmentHandler.ListAppointments)
	})
}
