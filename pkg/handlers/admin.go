package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/storage"
	"campaign-site-backend/pkg/utils"
)

// maxUploadMemory is the in-memory buffer for multipart parsing; larger
// file parts spill to disk.
const maxUploadMemory = 32 << 20

// AdminHandler serves the authenticated content-management API. Entity
// forms post multipart bodies so an image file can ride along with the
// fields; the image is uploaded to the blob store first and the row is
// written after, with a compensating blob delete when the row write
// fails.
type AdminHandler struct {
	db    database.DatabaseInterface
	store *storage.Client
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(db database.DatabaseInterface, store *storage.Client) *AdminHandler {
	return &AdminHandler{db: db, store: store}
}

// uploadFormImage uploads the "image" part of a multipart form, if one
// was attached with actual content. Returns the public URL and the
// object path (for compensation), or empty strings when no usable file
// is present.
func (h *AdminHandler) uploadFormImage(r *http.Request, entityType string) (publicURL, objectPath string, err error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	defer file.Close()

	// Browsers send an empty part when the file input was left blank
	if header.Size == 0 {
		return "", "", nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	objectPath = storage.ObjectPath(entityType, header.Filename)
	contentType := header.Header.Get("Content-Type")

	if err := h.store.Upload(objectPath, data, contentType); err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	return h.store.PublicURL(objectPath), objectPath, nil
}

// compensateUpload removes an uploaded blob after the row write failed,
// so the bucket does not accumulate orphans.
func (h *AdminHandler) compensateUpload(objectPath string) {
	if objectPath == "" {
		return
	}
	if err := h.store.Remove(objectPath); err != nil {
		fmt.Printf("⚠️ Failed to remove orphaned upload %s: %v\n", objectPath, err)
	}
}

// formBool parses a checkbox-ish form value.
func formBool(r *http.Request, field string) bool {
	v := strings.ToLower(strings.TrimSpace(r.FormValue(field)))
	return v == "true" || v == "1" || v == "on"
}

// -----------------------------------------------------------------------------
// Events
// -----------------------------------------------------------------------------

// eventInputFromForm builds an EventInput from a multipart form. The
// image_url field carries the previous URL on edits; a fresh upload
// overwrites it.
func eventInputFromForm(r *http.Request) (*models.EventInput, string) {
	in := &models.EventInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Date:        strings.TrimSpace(r.FormValue("date")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		IsFeatured:  formBool(r, "is_featured"),
		Location:    strings.TrimSpace(r.FormValue("location")),
	}

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	return in, strings.Join(missing, ", ")
}

// CreateEvent handles POST /api/admin/events (multipart).
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in, missing := eventInputFromForm(r)
	if missing != "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", missing)
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "events")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = publicURL
	}

	event, err := h.db.CreateEvent(in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to create event")
		return
	}

	utils.WriteCreatedResponse(w, event)
}

// UpdateEvent handles PUT /api/admin/events/{id} (multipart). Without a
// new file the previous image URL carried in the form is kept as-is.
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in, missing := eventInputFromForm(r)
	if missing != "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", missing)
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "events")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = publicURL
	}

	event, err := h.db.UpdateEvent(id, in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to update event")
		return
	}

	utils.WriteSuccessResponse(w, event)
}

// DeleteEvent handles DELETE /api/admin/events/{id}.
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.db.DeleteEvent(id); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to delete event")
		return
	}

	utils.WriteSuccessResponse(w, map[string]string{"id": id, "deleted": "true"})
}

// SetEventFeatured handles PATCH /api/admin/events/{id}/featured with
// body {"is_featured": bool}. Flips exactly that flag.
func (h *AdminHandler) SetEventFeatured(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		IsFeatured bool `json:"is_featured"`
	}
	if err := utils.ParseJSONBody(r, &body); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	if err := h.db.SetEventFeatured(id, body.IsFeatured); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to update event")
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{"id": id, "is_featured": body.IsFeatured})
}

// -----------------------------------------------------------------------------
// Positions (plain JSON, no image)
// -----------------------------------------------------------------------------

// CreatePosition handles POST /api/admin/positions.
func (h *AdminHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var in models.PositionInput
	if err := utils.ParseJSONBody(r, &in); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	if in.Title == "" || in.Organization == "" || in.StartDate == "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", "title, organization and start_date are required")
		return
	}
	in.Normalize()

	position, err := h.db.CreatePosition(&in)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to create position")
		return
	}

	utils.WriteCreatedResponse(w, position)
}

// UpdatePosition handles PUT /api/admin/positions/{id}.
func (h *AdminHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.PositionInput
	if err := utils.ParseJSONBody(r, &in); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	if in.Title == "" || in.Organization == "" || in.StartDate == "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", "title, organization and start_date are required")
		return
	}
	in.Normalize()

	position, err := h.db.UpdatePosition(id, &in)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to update position")
		return
	}

	utils.WriteSuccessResponse(w, position)
}

// DeletePosition handles DELETE /api/admin/positions/{id}.
func (h *AdminHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.db.DeletePosition(id); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to delete position")
		return
	}

	utils.WriteSuccessResponse(w, map[string]string{"id": id, "deleted": "true"})
}

// SetPositionCurrent handles PATCH /api/admin/positions/{id}/current
// with body {"is_current": bool}. Marking a position current also nulls
// its end date at the store.
func (h *AdminHandler) SetPositionCurrent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		IsCurrent bool `json:"is_current"`
	}
	if err := utils.ParseJSONBody(r, &body); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	if err := h.db.SetPositionCurrent(id, body.IsCurrent); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to update position")
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{"id": id, "is_current": body.IsCurrent})
}

// -----------------------------------------------------------------------------
// About page (singleton)
// -----------------------------------------------------------------------------

// UpdateAboutPage handles PUT /api/admin/about (multipart). The handler
// resolves the singleton row itself; clients never pass an id.
func (h *AdminHandler) UpdateAboutPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in := &models.AboutPageInput{
		Biography:         strings.TrimSpace(r.FormValue("biography")),
		BiographyImageURL: strings.TrimSpace(r.FormValue("biography_image_url")),
	}
	if in.Biography == "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", "biography")
		return
	}
	if years := r.FormValue("years_of_service"); years != "" {
		n, err := strconv.Atoi(years)
		if err != nil || n < 0 {
			utils.WriteValidationErrorResponse(w, "years_of_service must be a non-negative integer", "")
			return
		}
		in.YearsOfService = n
	}

	current, err := h.db.GetAboutPage()
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load about page")
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "about")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.BiographyImageURL = publicURL
	}

	updated, err := h.db.UpdateAboutPage(current.ID, in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to update about page")
		return
	}

	utils.WriteSuccessResponse(w, updated)
}

// -----------------------------------------------------------------------------
// Hero banner (singleton)
// -----------------------------------------------------------------------------

// UpdateHero handles PUT /api/admin/hero (multipart).
func (h *AdminHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in := &models.HeroInput{
		Title:      strings.TrimSpace(r.FormValue("title")),
		Subtitle:   strings.TrimSpace(r.FormValue("subtitle")),
		ImageURL:   strings.TrimSpace(r.FormValue("image_url")),
		ButtonText: strings.TrimSpace(r.FormValue("button_text")),
		ButtonLink: strings.TrimSpace(r.FormValue("button_link")),
	}
	if in.Title == "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", "title")
		return
	}

	current, err := h.db.GetHero()
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load hero banner")
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "hero")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = publicURL
	}

	updated, err := h.db.UpdateHero(current.ID, in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to update hero banner")
		return
	}

	utils.WriteSuccessResponse(w, updated)
}

// -----------------------------------------------------------------------------
// Key missions
// -----------------------------------------------------------------------------

func missionInputFromForm(r *http.Request) (*models.KeyMissionInput, string) {
	in := &models.KeyMissionInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
	}
	if v := r.FormValue("order_index"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.OrderIndex = n
		}
	}
	if in.Title == "" {
		return in, "title"
	}
	return in, ""
}

// CreateKeyMission handles POST /api/admin/missions (multipart).
func (h *AdminHandler) CreateKeyMission(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in, missing := missionInputFromForm(r)
	if missing != "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", missing)
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "missions")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = publicURL
	}

	mission, err := h.db.CreateKeyMission(in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to create key mission")
		return
	}

	utils.WriteCreatedResponse(w, mission)
}

// UpdateKeyMission handles PUT /api/admin/missions/{id} (multipart).
func (h *AdminHandler) UpdateKeyMission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in, missing := missionInputFromForm(r)
	if missing != "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", missing)
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "missions")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = publicURL
	}

	mission, err := h.db.UpdateKeyMission(id, in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to update key mission")
		return
	}

	utils.WriteSuccessResponse(w, mission)
}

// DeleteKeyMission handles DELETE /api/admin/missions/{id}.
func (h *AdminHandler) DeleteKeyMission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.db.DeleteKeyMission(id); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to delete key mission")
		return
	}

	utils.WriteSuccessResponse(w, map[string]string{"id": id, "deleted": "true"})
}

// -----------------------------------------------------------------------------
// Timeline events
// -----------------------------------------------------------------------------

func timelineInputFromForm(r *http.Request) (*models.TimelineEventInput, string) {
	in := &models.TimelineEventInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Date:        strings.TrimSpace(r.FormValue("date")),
	}
	if v := strings.TrimSpace(r.FormValue("image_url")); v != "" {
		in.ImageURL = &v
	}
	if v := r.FormValue("order_index"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.OrderIndex = n
		}
	}

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	return in, strings.Join(missing, ", ")
}

// CreateTimelineEvent handles POST /api/admin/timeline (multipart).
func (h *AdminHandler) CreateTimelineEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in, missing := timelineInputFromForm(r)
	if missing != "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", missing)
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "timeline")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = &publicURL
	}

	event, err := h.db.CreateTimelineEvent(in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to create timeline event")
		return
	}

	utils.WriteCreatedResponse(w, event)
}

// UpdateTimelineEvent handles PUT /api/admin/timeline/{id} (multipart).
func (h *AdminHandler) UpdateTimelineEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid multipart form")
		return
	}

	in, missing := timelineInputFromForm(r)
	if missing != "" {
		utils.WriteValidationErrorResponse(w, "Missing required fields", missing)
		return
	}

	publicURL, objectPath, err := h.uploadFormImage(r, "timeline")
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, err.Error())
		return
	}
	if publicURL != "" {
		in.ImageURL = &publicURL
	}

	event, err := h.db.UpdateTimelineEvent(id, in)
	if err != nil {
		h.compensateUpload(objectPath)
		utils.WriteInternalServerErrorResponse(w, "Failed to update timeline event")
		return
	}

	utils.WriteSuccessResponse(w, event)
}

// DeleteTimelineEvent handles DELETE /api/admin/timeline/{id}.
func (h *AdminHandler) DeleteTimelineEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.db.DeleteTimelineEvent(id); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to delete timeline event")
		return
	}

	utils.WriteSuccessResponse(w, map[string]string{"id": id, "deleted": "true"})
}

// -----------------------------------------------------------------------------
// Dashboard
// -----------------------------------------------------------------------------

// GetStats handles GET /api/admin/stats.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetAdminStats()
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load stats")
		return
	}

	utils.WriteSuccessResponse(w, stats)
}

// GetRecentActivity handles GET /api/admin/activity?limit=N.
func (h *AdminHandler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(utils.GetQueryParam(r, "limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	activity, err := h.db.ListRecentActivity(limit)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load recent activity")
		return
	}

	utils.WriteSuccessResponse(w, activity)
}
