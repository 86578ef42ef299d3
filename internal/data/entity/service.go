package entity

import (
	"github.com/google/uuid"
)

type Service struct {
	Base
	CategoryID      uuid.UUID `db:"category_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Price           float64   `db:"price"`
	DurationMinutes int       `db:"duration_minutes"`
	IsActive        bool      `db:"is_active"`
}
