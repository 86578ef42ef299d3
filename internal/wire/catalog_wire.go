package wire

import (
	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /categories - active categories for the booking form
	r.Get("/categories", catalogHandler.ListCategories)

	// GET /services - active services, optional ?category_id filter
	r.Get("/services", catalogHandler.ListServices)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/categories", catalogHandler.CreateCategory)
		r.Put("/categories/{id}", catalogHandler.UpdateCategory)
		r.Delete("/categories/{id}", catalogHandler.DeleteCategory)

		r.Post("/services", catalogHandler.CreateService)
		r.Put("/services/{id}", catalogHandler.UpdateService)
		r.Delete("/services/{id}", catalogHandler.DeleteService)
	})
}
