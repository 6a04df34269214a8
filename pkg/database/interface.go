package database

import (
	"fmt"
	"os"

	"campaign-site-backend/pkg/models"
)

// DatabaseInterface defines every store operation the site needs.
// Both the Supabase REST backend and the direct PostgreSQL backend
// implement it; handlers never know which one they talk to.
type DatabaseInterface interface {
	// Events
	ListEvents(page, limit int) (*EventPage, error)
	ListFeaturedEvents(limit int) ([]models.Event, error)
	GetEvent(id string) (*models.Event, error)
	CreateEvent(in *models.EventInput) (*models.Event, error)
	UpdateEvent(id string, in *models.EventInput) (*models.Event, error)
	DeleteEvent(id string) error
	SetEventFeatured(id string, featured bool) error

	// Positions
	ListPositions(isCurrent bool) ([]models.Position, error)
	CreatePosition(in *models.PositionInput) (*models.Position, error)
	UpdatePosition(id string, in *models.PositionInput) (*models.Position, error)
	DeletePosition(id string) error
	SetPositionCurrent(id string, current bool) error

	// About page (singleton row)
	GetAboutPage() (*models.AboutPage, error)
	UpdateAboutPage(id string, in *models.AboutPageInput) (*models.AboutPage, error)

	// Hero banner (singleton row)
	GetHero() (*models.Hero, error)
	UpdateHero(id string, in *models.HeroInput) (*models.Hero, error)

	// Key missions
	ListKeyMissions() ([]models.KeyMission, error)
	CreateKeyMission(in *models.KeyMissionInput) (*models.KeyMission, error)
	UpdateKeyMission(id string, in *models.KeyMissionInput) (*models.KeyMission, error)
	DeleteKeyMission(id string) error

	// Timeline events
	ListTimelineEvents() ([]models.TimelineEvent, error)
	CreateTimelineEvent(in *models.TimelineEventInput) (*models.TimelineEvent, error)
	UpdateTimelineEvent(id string, in *models.TimelineEventInput) (*models.TimelineEvent, error)
	DeleteTimelineEvent(id string) error

	// Contact submissions
	CreateContactSubmission(req *models.ContactRequest) (*models.ContactSubmission, error)
	ListContactSubmissions(status string) ([]models.ContactSubmission, error)
	UpdateContactStatus(id string, status models.ContactStatus) error

	// Admin dashboard
	GetAdminStats() (*AdminStats, error)
	ListRecentActivity(limit int) ([]RecentActivity, error)

	// Admin accounts
	GetAdminByEmail(email string) (*models.AdminUser, error)

	// Health check
	HealthCheck() error

	// Close connection
	Close() error
}

// EventPage is one window of the paginated events listing.
// TotalPages = ceil(Total / limit). A page past the end carries an
// empty Events slice, not an error.
type EventPage struct {
	Events     []models.Event `json:"events"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// AdminStats carries the per-table row counts for the dashboard.
// Individual counts degrade to 0 when their sub-query fails.
type AdminStats struct {
	Events   int `json:"events"`
	Messages int `json:"messages"`
}

// RecentActivity is a dashboard feed entry merged from the newest
// events and contact messages, newest first.
type RecentActivity struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // "event" or "message"
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status,omitempty"`
}

// DatabaseConfig selects and configures the store backend.
type DatabaseConfig struct {
	PostgresDSN string
	SupabaseURL string
	SupabaseKey string
	Debug       bool
}

// NewDatabase picks the backend for the current environment.
func NewDatabase(config DatabaseConfig) DatabaseInterface {
	if isVercelEnvironment() {
		fmt.Printf("🧭 Detected Vercel production environment\n")

		// Prefer the Supabase REST API on Vercel (avoids IPv6 issues
		// with direct Postgres connections from lambdas)
		if config.SupabaseURL != "" && config.SupabaseKey != "" {
			fmt.Printf("🚀  Using Supabase REST API (Vercel optimized)\n")
			return NewSupabaseDatabase(config.SupabaseURL, config.SupabaseKey)
		}

		if config.PostgresDSN != "" {
			fmt.Printf("🌐  Using PostgreSQL in Vercel (may have IPv6 issues)\n")
			return NewPostgresDatabase(config.PostgresDSN)
		}

		panic("No valid database configured for Vercel environment. Please set SUPABASE_URL+SUPABASE_SERVICE_KEY or POSTGRES_DSN")
	}

	// Outside Vercel: PostgreSQL > Supabase
	if config.PostgresDSN != "" {
		fmt.Printf("🗄️  Using PostgreSQL database\n")
		return NewPostgresDatabase(config.PostgresDSN)
	}

	if config.SupabaseURL != "" && config.SupabaseKey != "" {
		fmt.Printf("🧰  Using Supabase REST API\n")
		return NewSupabaseDatabase(config.SupabaseURL, config.SupabaseKey)
	}

	panic("No valid database configuration found. Please configure POSTGRES_DSN or SUPABASE_URL+SUPABASE_SERVICE_KEY")
}

// isVercelEnvironment checks for the Vercel/Lambda runtime markers.
func isVercelEnvironment() bool {
	vercelEnv := os.Getenv("VERCEL_ENV")
	vercelURL := os.Getenv("VERCEL_URL")
	awsLambda := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	return vercelEnv != "" || vercelURL != "" || awsLambda != ""
}

// IsVercelEnvironment is the exported variant used by the router entry.
func IsVercelEnvironment() bool {
	return isVercelEnvironment()
}
