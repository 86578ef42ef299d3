package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status entity.AppointmentStatus) error

	// Slot queries
	FindActiveTimesByDate(ctx context.Context, date string) ([]string, error)
	ExistsActiveAt(ctx context.Context, date, timeSlot string) (bool, error)
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

const appointmentColumns = `id, customer_name, email, phone, category_id, service_id, "date", "time", notes, status, created_at`

// Create inserts the appointment and fills in the sequence-assigned id.
// The appointments_active_slot_idx partial unique index rejects a second
// active appointment at the same (date, time).
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (customer_name, email, phone, category_id, service_id, "date", "time", notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		appointment.CustomerName,
		appointment.Email,
		appointment.Phone,
		appointment.CategoryID,
		appointment.ServiceID,
		appointment.Date,
		appointment.Time,
		appointment.Notes,
		appointment.Status,
		appointment.CreatedAt,
	).Scan(&appointment.ID)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("date", appointment.Date),
			zap.String("time", appointment.Time),
		)
		return fmt.Errorf("create appointment at %s %s: %w", appointment.Date, appointment.Time, err)
	}

	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var appointment entity.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.CustomerName,
		&appointment.Email,
		&appointment.Phone,
		&appointment.CategoryID,
		&appointment.ServiceID,
		&appointment.Date,
		&appointment.Time,
		&appointment.Notes,
		&appointment.Status,
		&appointment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by ID",
			zap.Error(err),
			zap.Int64("appointment_id", id),
		)
		return nil, fmt.Errorf("find appointment by ID %d: %w", id, err)
	}

	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY "date", "time", id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all appointments", zap.Error(err))
		return nil, fmt.Errorf("find all appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *appointmentRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE email = $1 ORDER BY "date", "time", id`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find appointments by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find appointments by email %s: %w", email, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status entity.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.Int64("appointment_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update appointment %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %d not found", id)
	}

	return nil
}

// FindActiveTimesByDate returns the occupied time strings for one date,
// only pending and confirmed appointments count.
func (r *appointmentRepository) FindActiveTimesByDate(ctx context.Context, date string) ([]string, error) {
	query := `
		SELECT "time"
		FROM appointments
		WHERE "date" = $1 AND status IN ('pending', 'confirmed')
		ORDER BY "time"
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find active times by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find active times for %s: %w", date, err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			r.log.Error("Failed to scan time row", zap.Error(err))
			return nil, fmt.Errorf("scan time row: %w", err)
		}
		times = append(times, t)
	}

	return times, nil
}

func (r *appointmentRepository) ExistsActiveAt(ctx context.Context, date, timeSlot string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE "date" = $1 AND "time" = $2 AND status IN ('pending', 'confirmed')
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, date, timeSlot).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check active appointment",
			zap.Error(err),
			zap.String("date", date),
			zap.String("time", timeSlot),
		)
		return false, fmt.Errorf("check active appointment at %s %s: %w", date, timeSlot, err)
	}

	return exists, nil
}

func scanAppointments(rows pgx.Rows) ([]*entity.Appointment, error) {
	var appointments []*entity.Appointment
	for rows.Next() {
		var appointment entity.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.CustomerName,
			&appointment.Email,
			&appointment.Phone,
			&appointment.CategoryID,
			&appointment.ServiceID,
			&appointment.Date,
			&appointment.Time,
			&appointment.Notes,
			&appointment.Status,
			&appointment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, &appointment)
	}

	return appointments, nil
}
