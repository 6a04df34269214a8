package models

import "time"

// TimelineEvent is a career milestone on the about page timeline.
// The store returns these in date ascending order; no consumer re-sorts.
type TimelineEvent struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"date"`
	ImageURL    *string   `json:"image_url" db:"image_url"` // optional
	OrderIndex  int       `json:"order_index" db:"order_index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TimelineEventInput is the payload for creating or updating a timeline event.
type TimelineEventInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"`
	ImageURL    *string `json:"image_url"`
	OrderIndex  int     `json:"order_index"`
}
