package adaptor

import (
	"salon-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Appointment *AppointmentHandler
	Catalog     *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Appointment: NewAppointmentHandler(service.Appointment, log),
		Catalog:     NewCatalogHandler(service.Catalog, log),
	}
}
