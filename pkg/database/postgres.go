package database

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"campaign-site-backend/pkg/models"

	_ "github.com/lib/pq"
)

// PostgresDatabase implements the store over a direct SQL connection.
type PostgresDatabase struct {
	db *sql.DB
}

// NewPostgresDatabase connects to PostgreSQL, trying several DSN
// parameter sets; serverless environments are picky about protocol
// negotiation and connect timeouts.
func NewPostgresDatabase(dsn string) DatabaseInterface {
	// Sanitize DSN to avoid stray CR/LF from env values
	dsn = strings.TrimSpace(dsn)
	strategies := []string{
		addConnectionParams(dsn, "prefer_simple_protocol=true"),
		addConnectionParams(dsn, "prefer_simple_protocol=true&connect_timeout=10"),
		addConnectionParams(dsn, "sslmode=require&prefer_simple_protocol=true"),
		dsn,
	}

	var db *sql.DB
	var err error

	for i, strategy := range strategies {
		fmt.Printf("🔄 Trying connection strategy %d...\n", i+1)

		db, err = sql.Open("postgres", strategy)
		if err != nil {
			fmt.Printf("❌ Strategy %d failed to open: %v\n", i+1, err)
			continue
		}

		// Pool limits sized for serverless instances
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err = db.Ping(); err != nil {
			fmt.Printf("❌ Strategy %d failed to ping: %v\n", i+1, err)
			db.Close()
			continue
		}

		fmt.Printf("✅ PostgreSQL connection established successfully with strategy %d\n", i+1)
		return &PostgresDatabase{db: db}
	}

	panic(fmt.Sprintf("Failed to connect to PostgreSQL with all strategies. Last error: %v", err))
}

// addConnectionParams appends query parameters to a DSN.
func addConnectionParams(dsn, params string) string {
	if params == "" {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + params
}

const eventColumns = `id, title, description, date::text, COALESCE(image_url,''), is_featured, COALESCE(location,''), created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.ImageURL,
		&e.IsFeatured, &e.Location, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ================= Events =================

// ListEvents returns one page of events, newest first, plus the exact
// total. Count and rows run concurrently; the count degrades to 0 on
// failure while a failed row query fails the call.
func (db *PostgresDatabase) ListEvents(page, limit int) (*EventPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	countCh := make(chan int, 1)
	go func() {
		var total int
		if err := db.db.QueryRow(`SELECT COUNT(*) FROM public.events`).Scan(&total); err != nil {
			fmt.Printf("[warn] events count query failed: %v\n", err)
			total = 0
		}
		countCh <- total
	}()

	rows, err := db.db.Query(`
        SELECT `+eventColumns+`
        FROM public.events
        ORDER BY date DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}

	total := <-countCh
	return &EventPage{
		Events:     events,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// ListFeaturedEvents returns the newest featured events, capped by limit.
func (db *PostgresDatabase) ListFeaturedEvents(limit int) ([]models.Event, error) {
	rows, err := db.db.Query(`
        SELECT `+eventColumns+`
        FROM public.events
        WHERE is_featured = TRUE
        ORDER BY date DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, nil
}

// GetEvent fetches a single event by id.
func (db *PostgresDatabase) GetEvent(id string) (*models.Event, error) {
	e, err := scanEvent(db.db.QueryRow(`
        SELECT `+eventColumns+`
        FROM public.events
        WHERE id = $1
    `, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

// CreateEvent inserts a new event and returns the stored row.
func (db *PostgresDatabase) CreateEvent(in *models.EventInput) (*models.Event, error) {
	e, err := scanEvent(db.db.QueryRow(`
        INSERT INTO public.events (title, description, date, image_url, is_featured, location, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING `+eventColumns+`
    `, in.Title, in.Description, in.Date, in.ImageURL, in.IsFeatured, in.Location))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return e, nil
}

// UpdateEvent updates an event by id and returns the stored row.
func (db *PostgresDatabase) UpdateEvent(id string, in *models.EventInput) (*models.Event, error) {
	e, err := scanEvent(db.db.QueryRow(`
        UPDATE public.events
        SET title = $2, description = $3, date = $4, image_url = $5, is_featured = $6, location = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING `+eventColumns+`
    `, id, in.Title, in.Description, in.Date, in.ImageURL, in.IsFeatured, in.Location))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found")
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return e, nil
}

// DeleteEvent removes an event by id.
func (db *PostgresDatabase) DeleteEvent(id string) error {
	if _, err := db.db.Exec(`DELETE FROM public.events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// SetEventFeatured flips only the is_featured column.
func (db *PostgresDatabase) SetEventFeatured(id string, featured bool) error {
	if _, err := db.db.Exec(`UPDATE public.events SET is_featured = $2 WHERE id = $1`, id, featured); err != nil {
		return fmt.Errorf("failed to toggle event feature flag: %w", err)
	}
	return nil
}

// ================= Positions =================

const positionColumns = `id, title, organization, start_date::text, end_date::text, is_current, COALESCE(description,''), created_at, updated_at`

func scanPosition(row interface{ Scan(...interface{}) error }) (*models.Position, error) {
	var p models.Position
	var endDate sql.NullString
	err := row.Scan(&p.ID, &p.Title, &p.Organization, &p.StartDate, &endDate,
		&p.IsCurrent, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		p.EndDate = &endDate.String
	}
	return &p, nil
}

// ListPositions returns positions filtered by is_current, newest start first.
func (db *PostgresDatabase) ListPositions(isCurrent bool) ([]models.Position, error) {
	rows, err := db.db.Query(`
        SELECT `+positionColumns+`
        FROM public.positions
        WHERE is_current = $1
        ORDER BY start_date DESC
    `, isCurrent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}
	defer rows.Close()

	positions := []models.Position{}
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, *p)
	}
	return positions, nil
}

// CreatePosition inserts a new position and returns the stored row.
func (db *PostgresDatabase) CreatePosition(in *models.PositionInput) (*models.Position, error) {
	in.Normalize()
	p, err := scanPosition(db.db.QueryRow(`
        INSERT INTO public.positions (title, organization, start_date, end_date, is_current, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING `+positionColumns+`
    `, in.Title, in.Organization, in.StartDate, in.EndDate, in.IsCurrent, in.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return p, nil
}

// UpdatePosition updates a position by id and returns the stored row.
func (db *PostgresDatabase) UpdatePosition(id string, in *models.PositionInput) (*models.Position, error) {
	in.Normalize()
	p, err := scanPosition(db.db.QueryRow(`
        UPDATE public.positions
        SET title = $2, organization = $3, start_date = $4, end_date = $5, is_current = $6, description = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING `+positionColumns+`
    `, id, in.Title, in.Organization, in.StartDate, in.EndDate, in.IsCurrent, in.Description))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("position not found")
		}
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return p, nil
}

// DeletePosition removes a position by id.
func (db *PostgresDatabase) DeletePosition(id string) error {
	if _, err := db.db.Exec(`DELETE FROM public.positions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// SetPositionCurrent flips only the is_current column, nulling end_date
// when the position becomes current again.
func (db *PostgresDatabase) SetPositionCurrent(id string, current bool) error {
	var err error
	if current {
		_, err = db.db.Exec(`UPDATE public.positions SET is_current = TRUE, end_date = NULL WHERE id = $1`, id)
	} else {
		_, err = db.db.Exec(`UPDATE public.positions SET is_current = FALSE WHERE id = $1`, id)
	}
	if err != nil {
		return fmt.Errorf("failed to toggle position current flag: %w", err)
	}
	return nil
}

// ================= About page & hero (singletons) =================

// GetAboutPage fetches the singleton about_page row; zero or multiple
// rows is an error.
func (db *PostgresDatabase) GetAboutPage() (*models.AboutPage, error) {
	rows, err := db.db.Query(`
        SELECT id, biography, COALESCE(biography_image_url,''), years_of_service, created_at, updated_at
        FROM public.about_page
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch about page: %w", err)
	}
	defer rows.Close()

	var pages []models.AboutPage
	for rows.Next() {
		var a models.AboutPage
		if err := rows.Scan(&a.ID, &a.Biography, &a.BiographyImageURL, &a.YearsOfService, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan about page: %w", err)
		}
		pages = append(pages, a)
	}
	if len(pages) != 1 {
		return nil, fmt.Errorf("about_page expects exactly one row, got %d", len(pages))
	}
	return &pages[0], nil
}

// UpdateAboutPage updates the about page row by id.
func (db *PostgresDatabase) UpdateAboutPage(id string, in *models.AboutPageInput) (*models.AboutPage, error) {
	var a models.AboutPage
	err := db.db.QueryRow(`
        UPDATE public.about_page
        SET biography = $2, biography_image_url = $3, years_of_service = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING id, biography, COALESCE(biography_image_url,''), years_of_service, created_at, updated_at
    `, id, in.Biography, in.BiographyImageURL, in.YearsOfService).
		Scan(&a.ID, &a.Biography, &a.BiographyImageURL, &a.YearsOfService, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("about page not found")
		}
		return nil, fmt.Errorf("failed to update about page: %w", err)
	}
	return &a, nil
}

// GetHero fetches the singleton hero row.
func (db *PostgresDatabase) GetHero() (*models.Hero, error) {
	rows, err := db.db.Query(`
        SELECT id, title, subtitle, COALESCE(image_url,''), button_text, button_link, created_at, updated_at
        FROM public.hero
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hero: %w", err)
	}
	defer rows.Close()

	var heroes []models.Hero
	for rows.Next() {
		var h models.Hero
		if err := rows.Scan(&h.ID, &h.Title, &h.Subtitle, &h.ImageURL, &h.ButtonText, &h.ButtonLink, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hero: %w", err)
		}
		heroes = append(heroes, h)
	}
	if len(heroes) != 1 {
		return nil, fmt.Errorf("hero expects exactly one row, got %d", len(heroes))
	}
	return &heroes[0], nil
}

// UpdateHero updates the hero row by id.
func (db *PostgresDatabase) UpdateHero(id string, in *models.HeroInput) (*models.Hero, error) {
	var h models.Hero
	err := db.db.QueryRow(`
        UPDATE public.hero
        SET title = $2, subtitle = $3, image_url = $4, button_text = $5, button_link = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING id, title, subtitle, COALESCE(image_url,''), button_text, button_link, created_at, updated_at
    `, id, in.Title, in.Subtitle, in.ImageURL, in.ButtonText, in.ButtonLink).
		Scan(&h.ID, &h.Title, &h.Subtitle, &h.ImageURL, &h.ButtonText, &h.ButtonLink, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("hero not found")
		}
		return nil, fmt.Errorf("failed to update hero: %w", err)
	}
	return &h, nil
}

// ================= Key missions =================

const missionColumns = `id, title, COALESCE(description,''), COALESCE(image_url,''), order_index, created_at, updated_at`

func scanMission(row interface{ Scan(...interface{}) error }) (*models.KeyMission, error) {
	var m models.KeyMission
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.ImageURL, &m.OrderIndex, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListKeyMissions returns all missions in display order.
func (db *PostgresDatabase) ListKeyMissions() ([]models.KeyMission, error) {
	rows, err := db.db.Query(`
        SELECT ` + missionColumns + `
        FROM public.key_missions
        ORDER BY order_index ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key missions: %w", err)
	}
	defer rows.Close()

	missions := []models.KeyMission{}
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan key mission: %w", err)
		}
		missions = append(missions, *m)
	}
	return missions, nil
}

// CreateKeyMission inserts a mission and returns the stored row.
func (db *PostgresDatabase) CreateKeyMission(in *models.KeyMissionInput) (*models.KeyMission, error) {
	m, err := scanMission(db.db.QueryRow(`
        INSERT INTO public.key_missions (title, description, image_url, order_index, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING `+missionColumns+`
    `, in.Title, in.Description, in.ImageURL, in.OrderIndex))
	if err != nil {
		return nil, fmt.Errorf("failed to create key mission: %w", err)
	}
	return m, nil
}

// UpdateKeyMission updates a mission by id and returns the stored row.
func (db *PostgresDatabase) UpdateKeyMission(id string, in *models.KeyMissionInput) (*models.KeyMission, error) {
	m, err := scanMission(db.db.QueryRow(`
        UPDATE public.key_missions
        SET title = $2, description = $3, image_url = $4, order_index = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING `+missionColumns+`
    `, id, in.Title, in.Description, in.ImageURL, in.OrderIndex))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("key mission not found")
		}
		return nil, fmt.Errorf("failed to update key mission: %w", err)
	}
	return m, nil
}

// DeleteKeyMission removes a mission by id.
func (db *PostgresDatabase) DeleteKeyMission(id string) error {
	if _, err := db.db.Exec(`DELETE FROM public.key_missions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete key mission: %w", err)
	}
	return nil
}

// ================= Timeline events =================

const timelineColumns = `id, title, COALESCE(description,''), date::text, image_url, order_index, created_at, updated_at`

func scanTimeline(row interface{ Scan(...interface{}) error }) (*models.TimelineEvent, error) {
	var t models.TimelineEvent
	var imageURL sql.NullString
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Date, &imageURL, &t.OrderIndex, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		t.ImageURL = &imageURL.String
	}
	return &t, nil
}

// ListTimelineEvents returns the full timeline in date ascending order.
func (db *PostgresDatabase) ListTimelineEvents() ([]models.TimelineEvent, error) {
	rows, err := db.db.Query(`
        SELECT ` + timelineColumns + `
        FROM public.timeline_events
        ORDER BY date ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline events: %w", err)
	}
	defer rows.Close()

	events := []models.TimelineEvent{}
	for rows.Next() {
		t, err := scanTimeline(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline event: %w", err)
		}
		events = append(events, *t)
	}
	return events, nil
}

// CreateTimelineEvent inserts a timeline event and returns the stored row.
func (db *PostgresDatabase) CreateTimelineEvent(in *models.TimelineEventInput) (*models.TimelineEvent, error) {
	t, err := scanTimeline(db.db.QueryRow(`
        INSERT INTO public.timeline_events (title, description, date, image_url, order_index, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING `+timelineColumns+`
    `, in.Title, in.Description, in.Date, in.ImageURL, in.OrderIndex))
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}
	return t, nil
}

// UpdateTimelineEvent updates a timeline event by id and returns the stored row.
func (db *PostgresDatabase) UpdateTimelineEvent(id string, in *models.TimelineEventInput) (*models.TimelineEvent, error) {
	t, err := scanTimeline(db.db.QueryRow(`
        UPDATE public.timeline_events
        SET title = $2, description = $3, date = $4, image_url = $5, order_index = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING `+timelineColumns+`
    `, id, in.Title, in.Description, in.Date, in.ImageURL, in.OrderIndex))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timeline event not found")
		}
		return nil, fmt.Errorf("failed to update timeline event: %w", err)
	}
	return t, nil
}

// DeleteTimelineEvent removes a timeline event by id.
func (db *PostgresDatabase) DeleteTimelineEvent(id string) error {
	if _, err := db.db.Exec(`DELETE FROM public.timeline_events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete timeline event: %w", err)
	}
	return nil
}

// ================= Contact submissions =================

// CreateContactSubmission inserts a contact form message with status "new".
func (db *PostgresDatabase) CreateContactSubmission(req *models.ContactRequest) (*models.ContactSubmission, error) {
	var s models.ContactSubmission
	err := db.db.QueryRow(`
        INSERT INTO public.contact_submission (name, contact, message, status, created_at)
        VALUES ($1, $2, $3, 'new', NOW())
        RETURNING id, name, contact, message, status, created_at
    `, req.Name, req.Contact, req.Message).
		Scan(&s.ID, &s.Name, &s.Contact, &s.Message, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return &s, nil
}

// ListContactSubmissions returns the inbox, newest first, optionally
// filtered by status ("" means all).
func (db *PostgresDatabase) ListContactSubmissions(status string) ([]models.ContactSubmission, error) {
	query := `
        SELECT id, name, contact, message, status, created_at
        FROM public.contact_submission
    `
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.ContactSubmission{}
	for rows.Next() {
		var s models.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Message, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, nil
}

// UpdateContactStatus moves a submission to another handling status.
func (db *PostgresDatabase) UpdateContactStatus(id string, status models.ContactStatus) error {
	if _, err := db.db.Exec(`UPDATE public.contact_submission SET status = $2 WHERE id = $1`, id, string(status)); err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	return nil
}

// ================= Admin dashboard =================

// GetAdminStats counts rows per content table; each count degrades to 0.
func (db *PostgresDatabase) GetAdminStats() (*AdminStats, error) {
	count := func(table string) int {
		var n int
		if err := db.db.QueryRow(`SELECT COUNT(*) FROM public.` + table).Scan(&n); err != nil {
			fmt.Printf("[warn] %s count failed: %v\n", table, err)
			return 0
		}
		return n
	}
	return &AdminStats{
		Events:   count("events"),
		Messages: count("contact_submission"),
	}, nil
}

// ListRecentActivity merges the newest events and contact messages into
// one feed, newest first, capped at limit.
func (db *PostgresDatabase) ListRecentActivity(limit int) ([]RecentActivity, error) {
	type feedEntry struct {
		RecentActivity
		at time.Time
	}
	var entries []feedEntry

	rows, err := db.db.Query(`
        SELECT id, title, date::text, created_at
        FROM public.events
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var id, title, date string
			var createdAt time.Time
			if err := rows.Scan(&id, &title, &date, &createdAt); err == nil {
				entries = append(entries, feedEntry{
					RecentActivity: RecentActivity{
						ID:          id,
						Type:        "event",
						Title:       title,
						Description: "New event scheduled for " + date,
						Date:        createdAt.Format(time.RFC3339),
					},
					at: createdAt,
				})
			}
		}
	} else {
		fmt.Printf("[warn] recent events fetch failed: %v\n", err)
	}

	msgRows, err := db.db.Query(`
        SELECT id, name, message, status, created_at
        FROM public.contact_submission
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err == nil {
		defer msgRows.Close()
		for msgRows.Next() {
			var id, name, message, status string
			var createdAt time.Time
			if err := msgRows.Scan(&id, &name, &message, &status, &createdAt); err == nil {
				entries = append(entries, feedEntry{
					RecentActivity: RecentActivity{
						ID:          id,
						Type:        "message",
						Title:       "Message from " + name,
						Description: message,
						Date:        createdAt.Format(time.RFC3339),
						Status:      status,
					},
					at: createdAt,
				})
			}
		}
	} else {
		fmt.Printf("[warn] recent messages fetch failed: %v\n", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	feed := make([]RecentActivity, 0, len(entries))
	for _, e := range entries {
		feed = append(feed, e.RecentActivity)
	}
	return feed, nil
}

// ================= Admin accounts =================

// GetAdminByEmail looks up an operator account for credential login.
func (db *PostgresDatabase) GetAdminByEmail(email string) (*models.AdminUser, error) {
	var u models.AdminUser
	err := db.db.QueryRow(`
        SELECT id, email, COALESCE(password_hash,''), COALESCE(name,''), created_at, updated_at
        FROM public.admin_users
        WHERE email = $1
    `, email).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("admin user not found")
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &u, nil
}

// HealthCheck pings the connection.
func (db *PostgresDatabase) HealthCheck() error {
	return db.db.Ping()
}

// Close releases the connection pool.
func (db *PostgresDatabase) Close() error {
	return db.db.Close()
}
