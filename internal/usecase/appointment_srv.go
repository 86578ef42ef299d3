package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/internal/schedule"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type AppointmentService interface {
	// Public booking flow
	AvailableTimes(ctx context.Context, date string) ([]response.TimeSlotResponse, error)
	CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error)

	// Authenticated
	ListUserAppointments(ctx context.Context, userID string) ([]response.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID int64, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error)

	// Admin
	ListAppointments(ctx context.Context) ([]response.AppointmentResponse, error)
}

type appointmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAppointmentService(repo *repository.Repository, log *zap.Logger) AppointmentService {
	return &appointmentService{
		repo: repo,
		log:  log.With(zap.String("service", "appointment")),
	}
}

// AvailableTimes annotates the day's slot template with occupancy for one
// date. Only pending and confirmed appointments occupy a slot.
func (s *appointmentService) AvailableTimes(ctx context.Context, date string) ([]response.TimeSlotResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date format %s, expected YYYY-MM-DD", date)
	}

	occupiedTimes, err := s.repo.Appointment.FindActiveTimesByDate(ctx, date)
	if err != nil {
		s.log.Error("Failed to load occupied times", zap.Error(err), zap.String("date", date))
		return nil, fmt.Errorf("load occupied times for %s: %w", date, err)
	}

	occupied := make(map[string]bool, len(occupiedTimes))
	for _, t := range occupiedTimes {
		occupied[t] = true
	}

	template := schedule.DaySlots()
	slots := make([]response.TimeSlotResponse, len(template))
	for i, t := range template {
		slots[i] = response.SlotToResponse(t, occupied[t])
	}

	s.log.Debug("Available times computed",
		zap.String("date", date),
		zap.Int("occupied", len(occupiedTimes)),
	)

	return slots, nil
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create appointment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format %s: %w", req.CategoryID, err)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", req.ServiceID, err)
	}

	// Validate catalog references
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil || category == nil {
		return nil, fmt.Errorf("category %s not found", req.CategoryID)
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil || service == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	// Conflict check before writing, gives the friendly error in the
	// common case. The partial unique index catches the race below.
	taken, err := s.repo.Appointment.ExistsActiveAt(ctx, req.Date, req.Time)
	if err != nil {
		s.log.Error("Failed to check slot availability", zap.Error(err))
		return nil, fmt.Errorf("check slot availability: %w", err)
	}
	if taken {
		s.log.Warn("Slot conflict on create",
			zap.String("date", req.Date),
			zap.String("time", req.Time),
		)
		return nil, fmt.Errorf("time slot %s on %s is already booked", req.Time, req.Date)
	}

	// New appointments always start pending, never trust client status
	appointment := &entity.Appointment{
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CategoryID:   categoryID,
		ServiceID:    serviceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		Status:       entity.AppointmentStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		// Two requests can pass the check above before either insert
		// lands, the storage-level unique index decides the winner.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			s.log.Warn("Slot conflict caught by unique index",
				zap.String("date", req.Date),
				zap.String("time", req.Time),
			)
			return nil, fmt.Errorf("time slot %s on %s is already booked", req.Time, req.Date)
		}

		s.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
		)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.log.Info("Appointment created",
		zap.Int64("appointment_id", appointment.ID),
		zap.String("date", appointment.Date),
		zap.String("time", appointment.Time),
		zap.String("service", service.Name),
	)

	resp := response.AppointmentToResponse(appointment)
	resp.CategoryName = category.Name
	resp.ServiceName = service.Name
	return &resp, nil
}

func (s *appointmentService) ListUserAppointments(ctx context.Context, userID string) ([]response.AppointmentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	appointments, err := s.repo.Appointment.FindByEmail(ctx, user.Email)
	if err != nil {
		s.log.Error("Failed to list user appointments",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("list user appointments: %w", err)
	}

	return s.convertAppointments(ctx, appointments), nil
}

// UpdateStatus applies any of the four statuses regardless of the current
// one. Reactivating a completed or cancelled appointment is allowed, the
// admin workflow relies on it for corrections.
func (s *appointmentService) UpdateStatus(ctx context.Context, appointmentID int64, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.AppointmentStatus(req.Status)

	if err := s.repo.Appointment.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, err
	}

	appointment, err := s.repo.Appointment.FindByID(ctx, appointmentID)
	if err != nil || appointment == nil {
		return nil, fmt.Errorf("appointment %d not found", appointmentID)
	}

	s.log.Info("Appointment status updated",
		zap.Int64("appointment_id", appointmentID),
		zap.String("status", req.Status),
	)

	resp := s.convertAppointments(ctx, []*entity.Appointment{appointment})
	return &resp[0], nil
}

func (s *appointmentService) ListAppointments(ctx context.Context) ([]response.AppointmentResponse, error) {
	appointments, err := s.repo.Appointment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list appointments", zap.Error(err))
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	s.log.Info("Appointments listed", zap.Int("count", len(appointments)))
	return s.convertAppointments(ctx, appointments), nil
}

// convertAppointments enriches responses with catalog names, lookups are
// tolerant so a deleted service never breaks a listing
func (s *appointmentService) convertAppointments(ctx context.Context, appointments []*entity.Appointment) []response.AppointmentResponse {
	responses := make([]response.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := response.AppointmentToResponse(appointment)

		category, _ := s.repo.Category.FindByID(ctx, appointment.CategoryID)
		if category != nil {
			resp.CategoryName = category.Name
		}

		service, _ := s.repo.Service.FindByID(ctx, appointment.ServiceID)
		if service != nil {
			resp.ServiceName = service.Name
		}

		responses[i] = resp
	}

	return responses
}
