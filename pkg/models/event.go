package models

import "time"

// Event represents a campaign event shown on the public events page.
type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"date"` // calendar date, YYYY-MM-DD
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`
	Location    string    `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// EventInput is the payload for creating or updating an event.
// ImageURL carries the previous URL on edits; the upload workflow
// overwrites it only when a new file was attached.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	ImageURL    string `json:"image_url"`
	IsFeatured  bool   `json:"is_featured"`
	Location    string `json:"location"`
}
