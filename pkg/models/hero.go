package models

import "time"

// Hero is the singleton banner record for the home page.
type Hero struct {
	ID         string    `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Subtitle   string    `json:"subtitle" db:"subtitle"`
	ImageURL   string    `json:"image_url,omitempty" db:"image_url"`
	ButtonText string    `json:"button_text" db:"button_text"`
	ButtonLink string    `json:"button_link" db:"button_link"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// HeroInput is the payload for updating the hero banner.
type HeroInput struct {
	Title      string `json:"title" validate:"required"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
}
