package response

import (
	"time"

	"salon-booking/internal/data/entity"
)

// Slot status tags reported by the availability endpoint
const (
	SlotStatusAvailable = "available"
	SlotStatusOccupied  = "occupied"
)

type TimeSlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
}

type AppointmentResponse struct {
	ID           int64                    `json:"id"`
	Name         string                   `json:"name"`
	Email        string                   `json:"email"`
	Phone        string                   `json:"phone"`
	CategoryID   string                   `json:"category_id"`
	ServiceID    string                   `json:"service_id"`
	CategoryName string                   `json:"category_name,omitempty"`
	ServiceName  string                   `json:"service_name,omitempty"`
	Date         string                   `json:"date"`
	Time         string                   `json:"time"`
	Notes        *string                  `json:"notes,omitempty"`
	Status       entity.AppointmentStatus `json:"status"`
	CreatedAt    time.Time                `json:"created_at"`
}

// Helper converters

func SlotToResponse(timeSlot string, occupied bool) TimeSlotResponse {
	status := SlotStatusAvailable
	if occupied {
		status = SlotStatusOccupied
	}
	return TimeSlotResponse{
		Time:      timeSlot,
		Available: !occupied,
		Status:    status,
	}
}

func AppointmentToResponse(appointment *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         appointment.ID,
		Name:       appointment.CustomerName,
		Email:      appointment.Email,
		Phone:      appointment.Phone,
		CategoryID: appointment.CategoryID.String(),
		ServiceID:  appointment.ServiceID.String(),
		Date:       appointment.Date,
		Time:       appointment.Time,
		Notes:      appointment.Notes,
		Status:     appointment.Status,
		CreatedAt:  appointment.CreatedAt,
	}
}
