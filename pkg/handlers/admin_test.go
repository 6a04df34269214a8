package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/storage"
)

// blobRecorder is a fake Supabase storage endpoint that records uploads
// and deletes.
type blobRecorder struct {
	mu      sync.Mutex
	uploads []string
	deletes []string
}

func (b *blobRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		path := strings.TrimPrefix(r.URL.Path, "/storage/v1/object/images/")
		switch r.Method {
		case http.MethodPost:
			b.uploads = append(b.uploads, path)
		case http.MethodDelete:
			b.deletes = append(b.deletes, path)
		}
		w.WriteHeader(http.StatusOK)
	}
}

func newAdminFixture(t *testing.T, db *fakeStore) (*AdminHandler, *blobRecorder, string) {
	t.Helper()
	rec := &blobRecorder{}
	srv := httptest.NewServer(rec.handler())
	t.Cleanup(srv.Close)

	store := storage.NewClient(srv.URL, "test-key", "images")
	return NewAdminHandler(db, store), rec, srv.URL
}

// multipartBody builds a multipart form with the given fields and an
// optional file part named "image".
func multipartBody(t *testing.T, fields map[string]string, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func eventFields() map[string]string {
	return map[string]string{
		"title":       "Rally",
		"description": "Downtown rally",
		"date":        "2026-09-01",
		"location":    "Main Square",
	}
}

func TestCreateEventWithImage(t *testing.T) {
	var created *models.EventInput
	db := &fakeStore{
		createEventFn: func(in *models.EventInput) (*models.Event, error) {
			created = in
			return &models.Event{ID: "e1", Title: in.Title, ImageURL: in.ImageURL}, nil
		},
	}
	h, blob, baseURL := newAdminFixture(t, db)

	body, contentType := multipartBody(t, eventFields(), "photo.JPG", []byte("jpegdata"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, created)

	// Stored URL points at the public bucket path, prefixed by the entity type
	prefix := baseURL + "/storage/v1/object/public/images/events/"
	assert.True(t, strings.HasPrefix(created.ImageURL, prefix), created.ImageURL)
	assert.True(t, strings.HasSuffix(created.ImageURL, ".jpg"))

	require.Len(t, blob.uploads, 1)
	assert.True(t, strings.HasPrefix(blob.uploads[0], "events/"))
	assert.Empty(t, blob.deletes)
}

func TestCreateEventWithoutImage(t *testing.T) {
	var created *models.EventInput
	db := &fakeStore{
		createEventFn: func(in *models.EventInput) (*models.Event, error) {
			created = in
			return &models.Event{ID: "e1"}, nil
		},
	}
	h, blob, _ := newAdminFixture(t, db)

	body, contentType := multipartBody(t, eventFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, created.ImageURL)
	assert.Empty(t, blob.uploads)
}

func TestCreateEventEmptyFilePartIsIgnored(t *testing.T) {
	db := &fakeStore{
		createEventFn: func(in *models.EventInput) (*models.Event, error) {
			return &models.Event{ID: "e1"}, nil
		},
	}
	h, blob, _ := newAdminFixture(t, db)

	// A blank file input submits a zero-length part
	body, contentType := multipartBody(t, eventFields(), "empty.png", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, blob.uploads)
}

func TestCreateEventMissingFields(t *testing.T) {
	h, blob, _ := newAdminFixture(t, &fakeStore{})

	fields := eventFields()
	delete(fields, "title")
	body, contentType := multipartBody(t, fields, "photo.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Validation runs before the upload, so nothing reaches the bucket
	assert.Empty(t, blob.uploads)
}

func TestCreateEventPersistFailureRemovesUpload(t *testing.T) {
	db := &fakeStore{
		createEventFn: func(in *models.EventInput) (*models.Event, error) {
			return nil, fmt.Errorf("insert failed")
		},
	}
	h, blob, _ := newAdminFixture(t, db)

	body, contentType := multipartBody(t, eventFields(), "photo.jpg", []byte("jpegdata"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, blob.uploads, 1)
	require.Len(t, blob.deletes, 1)
	assert.Equal(t, blob.uploads[0], blob.deletes[0], "the orphaned object must be removed")
}

func TestUpdateEventWithoutFileKeepsPreviousURL(t *testing.T) {
	const previousURL = "https://proj.supabase.co/storage/v1/object/public/images/events/old.jpg"

	var updated *models.EventInput
	db := &fakeStore{
		updateEventFn: func(id string, in *models.EventInput) (*models.Event, error) {
			updated = in
			return &models.Event{ID: id, ImageURL: in.ImageURL}, nil
		},
	}
	h, blob, _ := newAdminFixture(t, db)

	fields := eventFields()
	fields["image_url"] = previousURL
	body, contentType := multipartBody(t, fields, "", nil)

	r := chi.NewRouter()
	r.Put("/events/{id}", h.UpdateEvent)
	req := httptest.NewRequest(http.MethodPut, "/events/e1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, previousURL, updated.ImageURL)
	assert.Empty(t, blob.uploads)
}

func TestDeleteEvent(t *testing.T) {
	var deletedID string
	db := &fakeStore{
		deleteEventFn: func(id string) error {
			deletedID = id
			return nil
		},
	}
	h, _, _ := newAdminFixture(t, db)

	r := chi.NewRouter()
	r.Delete("/events/{id}", h.DeleteEvent)
	req := httptest.NewRequest(http.MethodDelete, "/events/e9", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e9", deletedID)
}

func TestSetEventFeatured(t *testing.T) {
	var gotID string
	var gotFeatured bool
	db := &fakeStore{
		setFeaturedFn: func(id string, featured bool) error {
			gotID = id
			gotFeatured = featured
			return nil
		},
	}
	h, _, _ := newAdminFixture(t, db)

	r := chi.NewRouter()
	r.Patch("/events/{id}/featured", h.SetEventFeatured)
	req := httptest.NewRequest(http.MethodPatch, "/events/e1/featured",
		strings.NewReader(`{"is_featured":true}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", gotID)
	assert.True(t, gotFeatured)
}

func TestCreatePositionNormalizesEndDate(t *testing.T) {
	var created *models.PositionInput
	db := &fakeStore{
		createPosFn: func(in *models.PositionInput) (*models.Position, error) {
			created = in
			return &models.Position{ID: "p1"}, nil
		},
	}
	h, _, _ := newAdminFixture(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/positions",
		strings.NewReader(`{"title":"Mayor","organization":"City","start_date":"2022-01-01","end_date":"2024-01-01","is_current":true}`))
	rec := httptest.NewRecorder()
	h.CreatePosition(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.Nil(t, created.EndDate, "a current position must not carry an end date")
}

func TestUpdateAboutPageResolvesSingleton(t *testing.T) {
	var updatedID string
	db := &fakeStore{
		getAboutFn: func() (*models.AboutPage, error) {
			return &models.AboutPage{ID: "about-1", Biography: "old"}, nil
		},
		updateAboutFn: func(id string, in *models.AboutPageInput) (*models.AboutPage, error) {
			updatedID = id
			return &models.AboutPage{ID: id, Biography: in.Biography}, nil
		},
	}
	h, _, _ := newAdminFixture(t, db)

	body, contentType := multipartBody(t, map[string]string{
		"biography":        "new biography",
		"years_of_service": "12",
	}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/about", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UpdateAboutPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "about-1", updatedID)
}

func TestGetRecentActivityLimitClamp(t *testing.T) {
	var gotLimit int
	db := &fakeStore{
		listRecentFn: func(limit int) ([]database.RecentActivity, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	h, _, _ := newAdminFixture(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/activity?limit=500", nil)
	rec := httptest.NewRecorder()
	h.GetRecentActivity(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotLimit, "out-of-range limits fall back to the default")
}
