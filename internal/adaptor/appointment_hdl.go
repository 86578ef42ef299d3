package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	service usecase.AppointmentService
	log     *zap.Logger
}

func NewAppointmentHandler(service usecase.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "appointment")),
	}
}

// AvailableTimes handles GET /appointments/available-times/{date} (public)
func (h *AppointmentHandler) AvailableTimes(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	slots, err := h.service.AvailableTimes(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "get available times")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// CreateAppointment handles POST /appointments (public booking flow)
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	appointment, err := h.service.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create appointment")
		return
	}

	utils.ResponseCreated(w, "success", appointment)
}

// ListAppointments handles GET /appointments (admin only)
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListAppointments(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list appointments")
		return
	}

	utils.ResponseSuccess(w, "success", appointments)
}

// MyAppointments handles GET /my-appointments (protected)
func (h *AppointmentHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	appointments, err := h.service.ListUserAppointments(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "list my appointments")
		return
	}

	utils.ResponseSuccess(w, "success", appointments)
}

// UpdateStatus handles PATCH /appointments/{id}/status (protected)
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	if idParam == "" {
		utils.ResponseBadRequest(w, "Appointment ID is required", nil)
		return
	}

	id, err := utils.ParseID(idParam)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid appointment ID", nil)
		return
	}

	var req request.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update appointment status")
		return
	}

	utils.ResponseSuccess(w, "success", appointment)
}

// handleServiceError maps service errors for appointment operations
func (h *AppointmentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - slot conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
