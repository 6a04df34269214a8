package models

import "time"

// ContactStatus tracks how far the team has handled a submission.
type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactArchived ContactStatus = "archived"
)

// ValidContactStatus reports whether s is one of the known statuses.
func ValidContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactNew, ContactRead, ContactArchived:
		return true
	}
	return false
}

// ContactSubmission is a message sent through the public contact form.
// Contact holds an email address or phone number as free text.
type ContactSubmission struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Contact   string        `json:"contact" db:"contact"`
	Message   string        `json:"message" db:"message"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// ContactRequest is the body of POST /api/contact. All fields required.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Message string `json:"message" validate:"required"`
}
