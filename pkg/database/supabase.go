package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"campaign-site-backend/pkg/models"
)

// SupabaseDatabase talks to the hosted store through the PostgREST API.
type SupabaseDatabase struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSupabaseDatabase creates a Supabase-backed store.
func NewSupabaseDatabase(u, key string) DatabaseInterface {
	if !strings.HasPrefix(u, "http") {
		u = "https://" + u
	}

	return &SupabaseDatabase{
		baseURL: strings.TrimSuffix(u, "/"),
		apiKey:  key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest sends one request to the PostgREST endpoint and returns the body.
func (db *SupabaseDatabase) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	data, _, err := db.makeRequestWithHeaders(method, endpoint, body, nil)
	return data, err
}

// makeRequestWithHeaders is makeRequest with custom request headers and
// access to the response headers (needed for Content-Range counts).
func (db *SupabaseDatabase) makeRequestWithHeaders(method, endpoint string, body interface{}, customHeaders map[string]string) ([]byte, http.Header, error) {
	var reqBody io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, db.baseURL+"/rest/v1"+endpoint, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", db.apiKey)
	req.Header.Set("Authorization", "Bearer "+db.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	for key, value := range customHeaders {
		req.Header.Set(key, value)
	}

	resp, err := db.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// 416 means the requested row range starts past the last row; PostgREST
	// treats that as an error but the listing contract wants an empty page.
	if resp.StatusCode == http.StatusRequestedRangeNotSatisfiable {
		return []byte("[]"), resp.Header, nil
	}

	if resp.StatusCode >= 400 {
		return nil, resp.Header, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, resp.Header, nil
}

// countRows asks PostgREST for an exact row count without fetching rows.
// filter is an optional pre-encoded query fragment like "status=eq.new".
func (db *SupabaseDatabase) countRows(table, filter string) (int, error) {
	endpoint := "/" + table + "?select=*"
	if filter != "" {
		endpoint += "&" + filter
	}

	_, headers, err := db.makeRequestWithHeaders("GET", endpoint, nil, map[string]string{
		"Prefer":     "count=exact",
		"Range-Unit": "items",
		"Range":      "0-0",
	})
	if err != nil {
		return 0, err
	}

	// Content-Range looks like "0-0/57", or "*/0" on an empty table.
	cr := headers.Get("Content-Range")
	idx := strings.LastIndex(cr, "/")
	if idx < 0 {
		return 0, fmt.Errorf("missing Content-Range header in count response")
	}
	total, err := strconv.Atoi(cr[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("unparseable Content-Range %q: %w", cr, err)
	}
	return total, nil
}

// ================= Events =================

// ListEvents returns one window of the events listing, newest first,
// together with the exact total. The count and the row window are issued
// concurrently; a failed count degrades to 0, a failed row fetch fails
// the whole call.
func (db *SupabaseDatabase) ListEvents(page, limit int) (*EventPage, error) {
	if page < 1 {
		page = 1
	}
	from := (page - 1) * limit
	to := from + limit - 1

	countCh := make(chan int, 1)
	go func() {
		total, err := db.countRows("events", "")
		if err != nil {
			fmt.Printf("[warn] events count query failed: %v\n", err)
			countCh <- 0
			return
		}
		countCh <- total
	}()

	data, _, err := db.makeRequestWithHeaders("GET", "/events?select=*&order=date.desc", nil, map[string]string{
		"Range-Unit": "items",
		"Range":      fmt.Sprintf("%d-%d", from, to),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	events := []models.Event{}
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events response: %w", err)
	}

	total := <-countCh
	return &EventPage{
		Events:     events,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// ListFeaturedEvents returns the newest featured events, capped by limit.
func (db *SupabaseDatabase) ListFeaturedEvents(limit int) ([]models.Event, error) {
	endpoint := fmt.Sprintf("/events?select=*&is_featured=eq.true&order=date.desc&limit=%d", limit)
	data, err := db.makeRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured events: %w", err)
	}
	events := []models.Event{}
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse featured events: %w", err)
	}
	return events, nil
}

// GetEvent fetches a single event by id.
func (db *SupabaseDatabase) GetEvent(id string) (*models.Event, error) {
	data, err := db.makeRequest("GET", "/events?id=eq."+id+"&select=*", nil)
	if err != nil {
		return nil, err
	}
	var rows []models.Event
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("event not found")
	}
	return &rows[0], nil
}

// CreateEvent inserts a new event and returns the stored row.
func (db *SupabaseDatabase) CreateEvent(in *models.EventInput) (*models.Event, error) {
	payload := map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"date":        in.Date,
		"image_url":   in.ImageURL,
		"is_featured": in.IsFeatured,
		"location":    in.Location,
	}
	data, err := db.makeRequest("POST", "/events", payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return decodeEventRow(data)
}

// UpdateEvent updates an event by id and returns the stored row.
func (db *SupabaseDatabase) UpdateEvent(id string, in *models.EventInput) (*models.Event, error) {
	payload := map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"date":        in.Date,
		"image_url":   in.ImageURL,
		"is_featured": in.IsFeatured,
		"location":    in.Location,
		"updated_at":  time.Now().Format(time.RFC3339),
	}
	data, err := db.makeRequest("PATCH", "/events?id=eq."+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return decodeEventRow(data)
}

// DeleteEvent removes an event by id.
func (db *SupabaseDatabase) DeleteEvent(id string) error {
	if _, err := db.makeRequest("DELETE", "/events?id=eq."+id, nil); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// SetEventFeatured flips only the is_featured column.
func (db *SupabaseDatabase) SetEventFeatured(id string, featured bool) error {
	_, err := db.makeRequest("PATCH", "/events?id=eq."+id, map[string]interface{}{
		"is_featured": featured,
	})
	if err != nil {
		return fmt.Errorf("failed to toggle event feature flag: %w", err)
	}
	return nil
}

func decodeEventRow(data []byte) (*models.Event, error) {
	var rows []models.Event
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse event response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("event not found")
	}
	return &rows[0], nil
}

// ================= Positions =================

// ListPositions returns positions filtered by is_current, newest start first.
func (db *SupabaseDatabase) ListPositions(isCurrent bool) ([]models.Position, error) {
	endpoint := fmt.Sprintf("/positions?select=*&is_current=eq.%t&order=start_date.desc", isCurrent)
	data, err := db.makeRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}
	positions := []models.Position{}
	if err := json.Unmarshal(data, &positions); err != nil {
		return nil, fmt.Errorf("failed to parse positions: %w", err)
	}
	return positions, nil
}

// CreatePosition inserts a new position and returns the stored row.
func (db *SupabaseDatabase) CreatePosition(in *models.PositionInput) (*models.Position, error) {
	in.Normalize()
	data, err := db.makeRequest("POST", "/positions", positionPayload(in))
	if err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return decodePositionRow(data)
}

// UpdatePosition updates a position by id and returns the stored row.
func (db *SupabaseDatabase) UpdatePosition(id string, in *models.PositionInput) (*models.Position, error) {
	in.Normalize()
	payload := positionPayload(in)
	payload["updated_at"] = time.Now().Format(time.RFC3339)
	data, err := db.makeRequest("PATCH", "/positions?id=eq."+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return decodePositionRow(data)
}

// DeletePosition removes a position by id.
func (db *SupabaseDatabase) DeletePosition(id string) error {
	if _, err := db.makeRequest("DELETE", "/positions?id=eq."+id, nil); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// SetPositionCurrent flips only the is_current column. Marking a position
// current also nulls its end_date to keep the pair consistent.
func (db *SupabaseDatabase) SetPositionCurrent(id string, current bool) error {
	payload := map[string]interface{}{"is_current": current}
	if current {
		payload["end_date"] = nil
	}
	_, err := db.makeRequest("PATCH", "/positions?id=eq."+id, payload)
	if err != nil {
		return fmt.Errorf("failed to toggle position current flag: %w", err)
	}
	return nil
}

func positionPayload(in *models.PositionInput) map[string]interface{} {
	return map[string]interface{}{
		"title":        in.Title,
		"organization": in.Organization,
		"start_date":   in.StartDate,
		"end_date":     in.EndDate,
		"is_current":   in.IsCurrent,
		"description":  in.Description,
	}
}

func decodePositionRow(data []byte) (*models.Position, error) {
	var rows []models.Position
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse position response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("position not found")
	}
	return &rows[0], nil
}

// ================= About page & hero (singletons) =================

// GetAboutPage fetches the singleton about_page row. Zero or multiple
// rows is an error, never a silent default.
func (db *SupabaseDatabase) GetAboutPage() (*models.AboutPage, error) {
	data, err := db.makeRequest("GET", "/about_page?select=*", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch about page: %w", err)
	}
	var rows []models.AboutPage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse about page: %w", err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("about_page expects exactly one row, got %d", len(rows))
	}
	return &rows[0], nil
}

// UpdateAboutPage updates the about page row by id.
func (db *SupabaseDatabase) UpdateAboutPage(id string, in *models.AboutPageInput) (*models.AboutPage, error) {
	payload := map[string]interface{}{
		"biography":           in.Biography,
		"biography_image_url": in.BiographyImageURL,
		"years_of_service":    in.YearsOfService,
		"updated_at":          time.Now().Format(time.RFC3339),
	}
	data, err := db.makeRequest("PATCH", "/about_page?id=eq."+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update about page: %w", err)
	}
	var rows []models.AboutPage
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("about page not found")
	}
	return &rows[0], nil
}

// GetHero fetches the singleton hero row.
func (db *SupabaseDatabase) GetHero() (*models.Hero, error) {
	data, err := db.makeRequest("GET", "/hero?select=*", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hero: %w", err)
	}
	var rows []models.Hero
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse hero: %w", err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("hero expects exactly one row, got %d", len(rows))
	}
	return &rows[0], nil
}

// UpdateHero updates the hero row by id.
func (db *SupabaseDatabase) UpdateHero(id string, in *models.HeroInput) (*models.Hero, error) {
	payload := map[string]interface{}{
		"title":       in.Title,
		"subtitle":    in.Subtitle,
		"image_url":   in.ImageURL,
		"button_text": in.ButtonText,
		"button_link": in.ButtonLink,
		"updated_at":  time.Now().Format(time.RFC3339),
	}
	data, err := db.makeRequest("PATCH", "/hero?id=eq."+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update hero: %w", err)
	}
	var rows []models.Hero
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("hero not found")
	}
	return &rows[0], nil
}

// ================= Key missions =================

// ListKeyMissions returns all missions in display order.
func (db *SupabaseDatabase) ListKeyMissions() ([]models.KeyMission, error) {
	data, err := db.makeRequest("GET", "/key_missions?select=*&order=order_index.asc", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key missions: %w", err)
	}
	missions := []models.KeyMission{}
	if err := json.Unmarshal(data, &missions); err != nil {
		return nil, fmt.Errorf("failed to parse key missions: %w", err)
	}
	return missions, nil
}

// CreateKeyMission inserts a mission and returns the stored row.
func (db *SupabaseDatabase) CreateKeyMission(in *models.KeyMissionInput) (*models.KeyMission, error) {
	data, err := db.makeRequest("POST", "/key_missions", missionPayload(in))
	if err != nil {
		return nil, fmt.Errorf("failed to create key mission: %w", err)
	}
	return decodeMissionRow(data)
}

// UpdateKeyMission updates a mission by id and returns the stored row.
func (db *SupabaseDatabase) UpdateKeyMission(id string, in *models.KeyMissionInput) (*models.KeyMission, error) {
	payload := missionPayload(in)
	payload["updated_at"] = time.Now().Format(time.RFC3339)
	data, err := db.makeRequest("PATCH", "/key_missions?id=eq."+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update key mission: %w", err)
	}
	return decodeMissionRow(data)
}

// DeleteKeyMission removes a mission by id.
func (db *SupabaseDatabase) DeleteKeyMission(id string) error {
	if _, err := db.makeRequest("DELETE", "/key_missions?id=eq."+id, nil); err != nil {
		return fmt.Errorf("failed to delete key mission: %w", err)
	}
	return nil
}

func missionPayload(in *models.KeyMissionInput) map[string]interface{} {
	return map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"image_url":   in.ImageURL,
		"order_index": in.OrderIndex,
	}
}

func decodeMissionRow(data []byte) (*models.KeyMission, error) {
	var rows []models.KeyMission
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse key mission response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("key mission not found")
	}
	return &rows[0], nil
}

// ================= Timeline events =================

// ListTimelineEvents returns the full timeline in date ascending order.
// Ordering lives here and only here; renderers trust store order.
func (db *SupabaseDatabase) ListTimelineEvents() ([]models.TimelineEvent, error) {
	data, err := db.makeRequest("GET", "/timeline_events?select=*&order=date.asc", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline events: %w", err)
	}
	events := []models.TimelineEvent{}
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse timeline events: %w", err)
	}
	return events, nil
}

// CreateTimelineEvent inserts a timeline event and returns the stored row.
func (db *SupabaseDatabase) CreateTimelineEvent(in *models.TimelineEventInput) (*models.TimelineEvent, error) {
	data, err := db.makeRequest("POST", "/timeline_events", timelinePayload(in))
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}
	return decodeTimelineRow(data)
}

// UpdateTimelineEvent updates a timeline event by id and returns the stored row.
func (db *SupabaseDatabase) UpdateTimelineEvent(id string, in *models.TimelineEventInput) (*models.TimelineEvent, error) {
	payload := timelinePayload(in)
	payload["updated_at"] = time.Now().Format(time.RFC3339)
	data, err := db.makeRequest("PATCH", "/timeline_events?id=eq."+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update timeline event: %w", err)
	}
	return decodeTimelineRow(data)
}

// DeleteTimelineEvent removes a timeline event by id.
func (db *SupabaseDatabase) DeleteTimelineEvent(id string) error {
	if _, err := db.makeRequest("DELETE", "/timeline_events?id=eq."+id, nil); err != nil {
		return fmt.Errorf("failed to delete timeline event: %w", err)
	}
	return nil
}

func timelinePayload(in *models.TimelineEventInput) map[string]interface{} {
	return map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"date":        in.Date,
		"image_url":   in.ImageURL,
		"order_index": in.OrderIndex,
	}
}

func decodeTimelineRow(data []byte) (*models.TimelineEvent, error) {
	var rows []models.TimelineEvent
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse timeline event response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("timeline event not found")
	}
	return &rows[0], nil
}

// ================= Contact submissions =================

// CreateContactSubmission inserts a contact form message with status "new".
func (db *SupabaseDatabase) CreateContactSubmission(req *models.ContactRequest) (*models.ContactSubmission, error) {
	payload := map[string]interface{}{
		"name":    req.Name,
		"contact": req.Contact,
		"message": req.Message,
		"status":  string(models.ContactNew),
	}
	data, err := db.makeRequest("POST", "/contact_submission", payload)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	var rows []models.ContactSubmission
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("failed to parse contact submission response")
	}
	return &rows[0], nil
}

// ListContactSubmissions returns the inbox, newest first, optionally
// filtered by status ("" means all).
func (db *SupabaseDatabase) ListContactSubmissions(status string) ([]models.ContactSubmission, error) {
	endpoint := "/contact_submission?select=*&order=created_at.desc"
	if status != "" {
		endpoint += "&status=eq." + url.QueryEscape(status)
	}
	data, err := db.makeRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}
	subs := []models.ContactSubmission{}
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("failed to parse contact submissions: %w", err)
	}
	return subs, nil
}

// UpdateContactStatus moves a submission to another handling status.
func (db *SupabaseDatabase) UpdateContactStatus(id string, status models.ContactStatus) error {
	_, err := db.makeRequest("PATCH", "/contact_submission?id=eq."+id, map[string]interface{}{
		"status": string(status),
	})
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	return nil
}

// ================= Admin dashboard =================

// GetAdminStats counts rows per content table. The counts run
// concurrently and each degrades to 0 on failure.
func (db *SupabaseDatabase) GetAdminStats() (*AdminStats, error) {
	eventsCh := make(chan int, 1)
	messagesCh := make(chan int, 1)

	count := func(table string, ch chan<- int) {
		n, err := db.countRows(table, "")
		if err != nil {
			fmt.Printf("[warn] %s count failed: %v\n", table, err)
			n = 0
		}
		ch <- n
	}
	go count("events", eventsCh)
	go count("contact_submission", messagesCh)

	return &AdminStats{
		Events:   <-eventsCh,
		Messages: <-messagesCh,
	}, nil
}

// ListRecentActivity merges the newest events and contact messages into
// one feed, newest first, capped at limit.
func (db *SupabaseDatabase) ListRecentActivity(limit int) ([]RecentActivity, error) {
	type feedEntry struct {
		RecentActivity
		at time.Time
	}

	eventsCh := make(chan []feedEntry, 1)
	go func() {
		var out []feedEntry
		endpoint := fmt.Sprintf("/events?select=id,title,date,created_at&order=created_at.desc&limit=%d", limit)
		data, err := db.makeRequest("GET", endpoint, nil)
		if err != nil {
			fmt.Printf("[warn] recent events fetch failed: %v\n", err)
			eventsCh <- out
			return
		}
		var rows []struct {
			ID        string    `json:"id"`
			Title     string    `json:"title"`
			Date      string    `json:"date"`
			CreatedAt time.Time `json:"created_at"`
		}
		_ = json.Unmarshal(data, &rows)
		for _, r := range rows {
			out = append(out, feedEntry{
				RecentActivity: RecentActivity{
					ID:          r.ID,
					Type:        "event",
					Title:       r.Title,
					Description: "New event scheduled for " + r.Date,
					Date:        r.CreatedAt.Format(time.RFC3339),
				},
				at: r.CreatedAt,
			})
		}
		eventsCh <- out
	}()

	var entries []feedEntry

	endpoint := fmt.Sprintf("/contact_submission?select=id,name,message,status,created_at&order=created_at.desc&limit=%d", limit)
	data, err := db.makeRequest("GET", endpoint, nil)
	if err != nil {
		fmt.Printf("[warn] recent messages fetch failed: %v\n", err)
	} else {
		var rows []struct {
			ID        string    `json:"id"`
			Name      string    `json:"name"`
			Message   string    `json:"message"`
			Status    string    `json:"status"`
			CreatedAt time.Time `json:"created_at"`
		}
		_ = json.Unmarshal(data, &rows)
		for _, r := range rows {
			entries = append(entries, feedEntry{
				RecentActivity: RecentActivity{
					ID:          r.ID,
					Type:        "message",
					Title:       "Message from " + r.Name,
					Description: r.Message,
					Date:        r.CreatedAt.Format(time.RFC3339),
					Status:      r.Status,
				},
				at: r.CreatedAt,
			})
		}
	}

	entries = append(entries, <-eventsCh...)

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
func (db *SupabaseDatabase) GetAdminByEmail(email string) (*models.AdminUser, error) {
	endpoint := "/admin_users?email=eq." + url.QueryEscape(email) + "&select=*"
	data, err := db.makeRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	var rows []models.AdminUser
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse admin user response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("admin user not found")
	}
	return &rows[0], nil
}

// HealthCheck probes the REST endpoint.
func (db *SupabaseDatabase) HealthCheck() error {
	_, err := db.makeRequest("GET", "/", nil)
	return err
}

// Close is a no-op; the HTTP client has nothing to release.
func (db *SupabaseDatabase) Close() error {
	return nil
}
