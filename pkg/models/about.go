package models

import "time"

// AboutPage is the singleton record backing the about page. Exactly one
// row is expected; singleton fetches fail on zero or multiple rows.
type AboutPage struct {
	ID                string    `json:"id" db:"id"`
	Biography         string    `json:"biography" db:"biography"`
	BiographyImageURL string    `json:"biography_image_url,omitempty" db:"biography_image_url"`
	YearsOfService    int       `json:"years_of_service" db:"years_of_service"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// AboutPageInput is the payload for updating the about page.
type AboutPageInput struct {
	Biography         string `json:"biography" validate:"required"`
	BiographyImageURL string `json:"biography_image_url"`
	YearsOfService    int    `json:"years_of_service"`
}
