package models

import "time"

// Position represents a held office or role, current or previous.
type Position struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Organization string    `json:"organization" db:"organization"`
	StartDate    string    `json:"start_date" db:"start_date"`
	EndDate      *string   `json:"end_date" db:"end_date"` // nil while is_current
	IsCurrent    bool      `json:"is_current" db:"is_current"`
	Description  string    `json:"description" db:"description"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PositionInput is the payload for creating or updating a position.
type PositionInput struct {
	Title        string  `json:"title" validate:"required"`
	Organization string  `json:"organization" validate:"required"`
	StartDate    string  `json:"start_date" validate:"required"`
	EndDate      *string `json:"end_date"`
	IsCurrent    bool    `json:"is_current"`
	Description  string  `json:"description"`
}

// Normalize enforces the end_date/is_current invariant: a current
// position never carries an end date.
func (in *PositionInput) Normalize() {
	if in.IsCurrent {
		in.EndDate = nil
	}
}
