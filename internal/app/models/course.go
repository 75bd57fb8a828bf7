package models

import (
	"time"
)

// Course represents a course owned by exactly one user. UserID references the
// owning user and is immutable after creation.
type Course struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	EstimatedTime   *string   `db:"estimated_time"`   // Nullable
	MaterialsNeeded *string   `db:"materials_needed"` // Nullable
	UserID          int64     `db:"user_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`

	// Relation (populated when needed)
	Owner *User
}
