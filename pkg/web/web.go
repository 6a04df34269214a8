// Package web serves the public server-rendered pages: home, about,
// events and contact. Pages read through the same store interface as
// the JSON API and degrade to safe defaults where the design calls for
// it (hero banner), instead of returning a blank 500 to visitors.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/handlers"
	"campaign-site-backend/pkg/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler renders the public pages.
type Handler struct {
	db        database.DatabaseInterface
	templates map[string]*template.Template
}

// pageNames lists every page template paired with the shared layout.
var pageNames = []string{"home", "about", "events", "event", "contact"}

// New parses the embedded templates and builds the page handler.
func New(db database.DatabaseInterface) (*Handler, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Handler{db: db, templates: templates}, nil
}

// render executes a page template into the response.
func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	t, ok := h.templates[name]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		fmt.Printf("❌ Failed to render %s: %v\n", name, err)
	}
}

// defaultHero is the hard-coded banner shown when the store cannot
// serve the singleton row. Visitors always get a home page.
func defaultHero() *models.Hero {
	return &models.Hero{
		Title:      "Working for our community",
		Subtitle:   "Committed to transparent, accountable public service.",
		ButtonText: "Get in touch",
		ButtonLink: "/contact",
	}
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	hero, err := h.db.GetHero()
	if err != nil {
		fmt.Printf("⚠️ Failed to load hero banner, using defaults: %v\n", err)
		hero = defaultHero()
	}

	featured, err := h.db.ListFeaturedEvents(handlers.FeaturedEventsLimit)
	if err != nil {
		fmt.Printf("⚠️ Failed to load featured events: %v\n", err)
		featured = nil
	}

	h.render(w, "home", map[string]interface{}{
		"Hero":     hero,
		"Featured": featured,
	})
}

// About handles GET /about. The timeline is rendered in the order the
// store returns it; ordering lives in one place, the store layer.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	about, err := h.db.GetAboutPage()
	if err != nil {
		fmt.Printf("⚠️ Failed to load about page, using defaults: %v\n", err)
		about = &models.AboutPage{
			Biography: "Biography is being updated. Please check back soon.",
		}
	}

	missions, err := h.db.ListKeyMissions()
	if err != nil {
		missions = nil
	}

	timeline, err := h.db.ListTimelineEvents()
	if err != nil {
		timeline = nil
	}

	h.render(w, "about", map[string]interface{}{
		"About":    about,
		"Missions": missions,
		"Timeline": timeline,
	})
}

// Events handles GET /events?page=N.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.db.ListEvents(page, handlers.EventsPageSize)
	if err != nil {
		fmt.Printf("⚠️ Failed to load events page %d: %v\n", page, err)
		h.render(w, "events", map[string]interface{}{
			"LoadError": true,
			"Page":      page,
		})
		return
	}

	prev := 0
	if page > 1 {
		prev = page - 1
	}
	next := 0
	if page < result.TotalPages {
		next = page + 1
	}

	h.render(w, "events", map[string]interface{}{
		"Events":     result.Events,
		"Page":       page,
		"TotalPages": result.TotalPages,
		"PrevPage":   prev,
		"NextPage":   next,
	})
}

// Event handles GET /events/{id}.
func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.db.GetEvent(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.render(w, "event", map[string]interface{}{
		"Event": event,
	})
}

// Contact handles GET /contact. The form posts to /api/contact via the
// page script.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact", nil)
}

// Routes mounts all public pages on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/events", h.Events)
	r.Get("/events/{id}", h.Event)
	r.Get("/contact", h.Contact)
}
