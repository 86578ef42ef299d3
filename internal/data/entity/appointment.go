package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsActive reports whether the appointment occupies its time slot.
// Cancelled and completed appointments never block a slot.
func (s AppointmentStatus) IsActive() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// Appointment ids are assigned by the database sequence, date and time are
// kept as the wire strings (YYYY-MM-DD / HH:MM) the booking form submits.
type Appointment struct {
	ID           int64             `db:"id"`
	CustomerName string            `db:"customer_name"`
	Email        string            `db:"email"`
	Phone        string            `db:"phone"`
	CategoryID   uuid.UUID         `db:"category_id"`
	ServiceID    uuid.UUID         `db:"service_id"`
	Date         string            `db:"date"`
	Time         string            `db:"time"`
	Notes        *string           `db:"notes"`
	Status       AppointmentStatus `db:"status"`
	CreatedAt    time.Time         `db:"created_at"`
}
