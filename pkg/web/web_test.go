package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
)

// fakeStore stubs only what the page handlers read; the embedded nil
// interface panics on anything else.
type fakeStore struct {
	database.DatabaseInterface

	hero      *models.Hero
	heroErr   error
	featured  []models.Event
	about     *models.AboutPage
	aboutErr  error
	missions  []models.KeyMission
	timeline  []models.TimelineEvent
	events    *database.EventPage
	eventsErr error
	event     *models.Event
	eventErr  error
}

func (f *fakeStore) GetHero() (*models.Hero, error)                  { return f.hero, f.heroErr }
func (f *fakeStore) ListFeaturedEvents(int) ([]models.Event, error)  { return f.featured, nil }
func (f *fakeStore) GetAboutPage() (*models.AboutPage, error)        { return f.about, f.aboutErr }
func (f *fakeStore) ListKeyMissions() ([]models.KeyMission, error)   { return f.missions, nil }
func (f *fakeStore) ListTimelineEvents() ([]models.TimelineEvent, error) {
	return f.timeline, nil
}
func (f *fakeStore) ListEvents(int, int) (*database.EventPage, error) { return f.events, f.eventsErr }
func (f *fakeStore) GetEvent(string) (*models.Event, error)           { return f.event, f.eventErr }

func newSite(t *testing.T, db database.DatabaseInterface) *chi.Mux {
	t.Helper()
	h, err := New(db)
	require.NoError(t, err)
	r := chi.NewRouter()
	r.Group(h.Routes)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersHero(t *testing.T) {
	r := newSite(t, &fakeStore{
		hero: &models.Hero{Title: "Four more years", Subtitle: "sub", ButtonText: "Join", ButtonLink: "/contact"},
	})

	rec := get(t, r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Four more years")
	assert.Contains(t, rec.Body.String(), "Join")
}

func TestHomeFallsBackToDefaultHero(t *testing.T) {
	r := newSite(t, &fakeStore{
		heroErr: fmt.Errorf("hero expects exactly one row, got 0"),
	})

	rec := get(t, r, "/")
	// Visitors get a page either way
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Working for our community")
}

func TestAboutRendersTimelineInStoreOrder(t *testing.T) {
	r := newSite(t, &fakeStore{
		about: &models.AboutPage{Biography: "bio"},
		timeline: []models.TimelineEvent{
			{ID: "t1", Title: "First elected", Date: "1999-05-01"},
			{ID: "t2", Title: "Re-elected", Date: "2004-05-01"},
		},
	})

	rec := get(t, r, "/about")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	first := strings.Index(body, "First elected")
	second := strings.Index(body, "Re-elected")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "timeline renders exactly in store order")
}

func TestAboutFallsBackOnMissingSingleton(t *testing.T) {
	r := newSite(t, &fakeStore{
		aboutErr: fmt.Errorf("about_page expects exactly one row, got 0"),
	})

	rec := get(t, r, "/about")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Biography is being updated")
}

func TestEventsPagination(t *testing.T) {
	r := newSite(t, &fakeStore{
		events: &database.EventPage{
			Events:     []models.Event{{ID: "e1", Title: "Rally", Date: "2026-09-01"}},
			Total:      13,
			TotalPages: 3,
		},
	})

	rec := get(t, r, "/events?page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Rally")
	assert.Contains(t, body, "/events?page=1")
	assert.Contains(t, body, "/events?page=3")
}

func TestEventsEmptyPage(t *testing.T) {
	r := newSite(t, &fakeStore{
		events: &database.EventPage{Events: []models.Event{}, Total: 7, TotalPages: 2},
	})

	rec := get(t, r, "/events?page=50")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No events on this page")
}

func TestEventsLoadErrorRendersInline(t *testing.T) {
	r := newSite(t, &fakeStore{
		eventsErr: fmt.Errorf("store unreachable"),
	})

	rec := get(t, r, "/events")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "temporarily unavailable")
}

func TestEventDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := newSite(t, &fakeStore{
			event: &models.Event{ID: "e1", Title: "Town hall", Date: "2026-09-01", Description: "Q&A"},
		})

		rec := get(t, r, "/events/e1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Town hall")
	})

	t.Run("missing is 404", func(t *testing.T) {
		r := newSite(t, &fakeStore{
			eventErr: fmt.Errorf("event not found"),
		})

		rec := get(t, r, "/events/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestContactPageRendersForm(t *testing.T) {
	r := newSite(t, &fakeStore{})

	rec := get(t, r, "/contact")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/contact")
	assert.Contains(t, rec.Body.String(), `name="message"`)
}
