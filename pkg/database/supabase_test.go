package database

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-site-backend/pkg/models"
)

// fakePostgrest simulates the PostgREST surface the store client uses:
// count requests carry "Prefer: count=exact" and are answered with a
// Content-Range header, row requests get a JSON array.
type fakePostgrest struct {
	total      int
	rows       string
	rowStatus  int
	countFails bool

	// The count request and the row request run concurrently
	mu              sync.Mutex
	lastRangeHeader string
	lastMethod      string
	lastQuery       string
	lastBody        []byte
}

func (f *fakePostgrest) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Prefer"), "count=exact") {
			if f.countFails {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message":"count unavailable"}`)
				return
			}
			w.Header().Set("Content-Range", fmt.Sprintf("0-0/%d", f.total))
			fmt.Fprint(w, "[]")
			return
		}

		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.lastMethod = r.Method
		f.lastQuery = r.URL.RawQuery
		f.lastRangeHeader = r.Header.Get("Range")
		f.lastBody = body
		f.mu.Unlock()

		if f.rowStatus != 0 {
			w.WriteHeader(f.rowStatus)
			if f.rowStatus == http.StatusRequestedRangeNotSatisfiable {
				fmt.Fprint(w, `{"message":"range not satisfiable"}`)
			}
			return
		}
		fmt.Fprint(w, f.rows)
	}
}

func newTestStore(t *testing.T, f *fakePostgrest) (DatabaseInterface, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return NewSupabaseDatabase(srv.URL, "test-key"), srv
}

func TestListEventsPagination(t *testing.T) {
	f := &fakePostgrest{
		total: 13,
		rows:  `[{"id":"e1","title":"Rally"},{"id":"e2","title":"Town hall"}]`,
	}
	store, _ := newTestStore(t, f)

	page, err := store.ListEvents(2, 6)
	require.NoError(t, err)

	// Page 2 of 6 asks for rows 6..11
	assert.Equal(t, "6-11", f.lastRangeHeader)
	assert.Equal(t, 13, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Events, 2)
	assert.Equal(t, "Rally", page.Events[0].Title)
}

func TestListEventsPageClamp(t *testing.T) {
	f := &fakePostgrest{total: 2, rows: `[]`}
	store, _ := newTestStore(t, f)

	_, err := store.ListEvents(0, 6)
	require.NoError(t, err)
	assert.Equal(t, "0-5", f.lastRangeHeader)
}

func TestListEventsPastEndReturnsEmptyPage(t *testing.T) {
	f := &fakePostgrest{
		total:     7,
		rowStatus: http.StatusRequestedRangeNotSatisfiable,
	}
	store, _ := newTestStore(t, f)

	page, err := store.ListEvents(50, 6)
	require.NoError(t, err)
	assert.Empty(t, page.Events)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestListEventsCountFailureDegradesToZero(t *testing.T) {
	f := &fakePostgrest{
		countFails: true,
		rows:       `[{"id":"e1","title":"Rally"}]`,
	}
	store, _ := newTestStore(t, f)

	page, err := store.ListEvents(1, 6)
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestListEventsRowFailureFailsCall(t *testing.T) {
	f := &fakePostgrest{total: 5, rowStatus: http.StatusInternalServerError}
	store, _ := newTestStore(t, f)

	_, err := store.ListEvents(1, 6)
	require.Error(t, err)
}

func TestListFeaturedEventsQuery(t *testing.T) {
	f := &fakePostgrest{rows: `[{"id":"e1","title":"Rally","is_featured":true}]`}
	store, _ := newTestStore(t, f)

	events, err := store.ListFeaturedEvents(3)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, f.lastQuery, "is_featured=eq.true")
	assert.Contains(t, f.lastQuery, "limit=3")
}

func TestGetAboutPageSingleton(t *testing.T) {
	t.Run("exactly one row", func(t *testing.T) {
		f := &fakePostgrest{rows: `[{"id":"a1","biography":"bio"}]`}
		store, _ := newTestStore(t, f)

		about, err := store.GetAboutPage()
		require.NoError(t, err)
		assert.Equal(t, "bio", about.Biography)
	})

	t.Run("zero rows is an error", func(t *testing.T) {
		f := &fakePostgrest{rows: `[]`}
		store, _ := newTestStore(t, f)

		_, err := store.GetAboutPage()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one row")
	})

	t.Run("multiple rows is an error", func(t *testing.T) {
		f := &fakePostgrest{rows: `[{"id":"a1"},{"id":"a2"}]`}
		store, _ := newTestStore(t, f)

		_, err := store.GetAboutPage()
		require.Error(t, err)
	})
}

func TestGetHeroSingleton(t *testing.T) {
	f := &fakePostgrest{rows: `[]`}
	store, _ := newTestStore(t, f)

	_, err := store.GetHero()
	require.Error(t, err)
}

func TestSetPositionCurrentNullsEndDate(t *testing.T) {
	f := &fakePostgrest{rows: `[{"id":"p1"}]`}
	store, _ := newTestStore(t, f)

	require.NoError(t, store.SetPositionCurrent("p1", true))
	assert.Equal(t, "PATCH", f.lastMethod)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(f.lastBody, &payload))
	assert.Equal(t, true, payload["is_current"])

	endDate, present := payload["end_date"]
	assert.True(t, present, "end_date must be explicitly nulled")
	assert.Nil(t, endDate)
}

func TestSetPositionNotCurrentKeepsEndDate(t *testing.T) {
	f := &fakePostgrest{rows: `[{"id":"p1"}]`}
	store, _ := newTestStore(t, f)

	require.NoError(t, store.SetPositionCurrent("p1", false))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(f.lastBody, &payload))
	_, present := payload["end_date"]
	assert.False(t, present, "end_date must stay untouched")
}

func TestCreateContactSubmissionStatusNew(t *testing.T) {
	f := &fakePostgrest{rows: `[{"id":"c1","name":"A","status":"new"}]`}
	store, _ := newTestStore(t, f)

	sub, err := store.CreateContactSubmission(&models.ContactRequest{
		Name:    "A",
		Contact: "a@b.com",
		Message: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactNew, sub.Status)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(f.lastBody, &payload))
	assert.Equal(t, "new", payload["status"])
}

func TestListContactSubmissionsStatusFilter(t *testing.T) {
	f := &fakePostgrest{rows: `[]`}
	store, _ := newTestStore(t, f)

	_, err := store.ListContactSubmissions("read")
	require.NoError(t, err)
	assert.Contains(t, f.lastQuery, "status=eq.read")

	_, err = store.ListContactSubmissions("")
	require.NoError(t, err)
	assert.NotContains(t, f.lastQuery, "status=eq.")
}

func TestSetEventFeaturedPayload(t *testing.T) {
	f := &fakePostgrest{rows: `[{"id":"e1"}]`}
	store, _ := newTestStore(t, f)

	require.NoError(t, store.SetEventFeatured("e1", true))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(f.lastBody, &payload))
	assert.Equal(t, map[string]interface{}{"is_featured": true}, payload)
}

func TestListTimelineEventsOrderedAscending(t *testing.T) {
	f := &fakePostgrest{rows: `[{"id":"t1","date":"1999-01-01"},{"id":"t2","date":"2004-06-01"}]`}
	store, _ := newTestStore(t, f)

	_, err := store.ListTimelineEvents()
	require.NoError(t, err)
	assert.Contains(t, f.lastQuery, "order=date.asc")
}
