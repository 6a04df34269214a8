package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/utils"
)

// EventsPageSize is the fixed window for the public events listing.
const EventsPageSize = 6

// FeaturedEventsLimit caps the home page featured strip.
const FeaturedEventsLimit = 3

// ContentHandler serves the public read-only JSON endpoints.
type ContentHandler struct {
	db database.DatabaseInterface
}

// NewContentHandler creates the public content handler.
func NewContentHandler(db database.DatabaseInterface) *ContentHandler {
	return &ContentHandler{db: db}
}

// ListEvents handles GET /api/events?page=N. Pages past the end return
// an empty list with the real totals, never an error.
func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(utils.GetQueryParam(r, "page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.db.ListEvents(page, EventsPageSize)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load events")
		return
	}

	utils.WritePaginatedResponse(w, result.Events, page, EventsPageSize, result.Total)
}

// GetEvent handles GET /api/events/{id}.
func (h *ContentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.db.GetEvent(id)
	if err != nil {
		utils.WriteNotFoundResponse(w, "Event not found")
		return
	}

	utils.WriteSuccessResponse(w, event)
}

// ListFeaturedEvents handles GET /api/events/featured.
func (h *ContentHandler) ListFeaturedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.db.ListFeaturedEvents(FeaturedEventsLimit)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load featured events")
		return
	}

	utils.WriteSuccessResponse(w, events)
}

// ListPositions handles GET /api/positions, returning current and
// previous roles as two lists.
func (h *ContentHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	current, err := h.db.ListPositions(true)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load positions")
		return
	}

	previous, err := h.db.ListPositions(false)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load positions")
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"current":  current,
		"previous": previous,
	})
}

// GetAboutPage handles GET /api/about. The singleton biography is
// required; missions and timeline degrade to empty lists so a partial
// store outage still renders a usable page.
func (h *ContentHandler) GetAboutPage(w http.ResponseWriter, r *http.Request) {
	about, err := h.db.GetAboutPage()
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load about page")
		return
	}

	missions, err := h.db.ListKeyMissions()
	if err != nil {
		fmt.Printf("⚠️ Failed to load key missions: %v\n", err)
		missions = []models.KeyMission{}
	}

	timeline, err := h.db.ListTimelineEvents()
	if err != nil {
		fmt.Printf("⚠️ Failed to load timeline: %v\n", err)
		timeline = []models.TimelineEvent{}
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"about":    about,
		"missions": missions,
		"timeline": timeline,
	})
}

// GetHero handles GET /api/hero.
func (h *ContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.db.GetHero()
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load hero banner")
		return
	}

	utils.WriteSuccessResponse(w, hero)
}
