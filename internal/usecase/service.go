package usecase

import (
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Appointment AppointmentService
	Catalog     CatalogService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Appointment: NewAppointmentService(repo, log),
		Catalog:     NewCatalogService(repo, log),
	}
}
