package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-site-backend/pkg/models"
)

func TestContactSubmit(t *testing.T) {
	t.Run("valid submission inserts a row with status new", func(t *testing.T) {
		var saved *models.ContactRequest
		db := &fakeStore{
			createContactFn: func(req *models.ContactRequest) (*models.ContactSubmission, error) {
				saved = req
				return &models.ContactSubmission{
					ID:      "c1",
					Name:    req.Name,
					Contact: req.Contact,
					Message: req.Message,
					Status:  models.ContactNew,
				}, nil
			},
		}

		h := NewContactHandler(db)
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"A","contact":"a@b.com","message":"hi"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, saved)
		assert.Equal(t, "A", saved.Name)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["message"])
		assert.Empty(t, body["error"])
	})

	t.Run("missing message is 400 and nothing is inserted", func(t *testing.T) {
		inserted := false
		db := &fakeStore{
			createContactFn: func(req *models.ContactRequest) (*models.ContactSubmission, error) {
				inserted = true
				return nil, nil
			},
		}

		h := NewContactHandler(db)
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"A","contact":"a@b.com"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, inserted, "a rejected submission must not reach the store")

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("whitespace-only fields count as missing", func(t *testing.T) {
		db := &fakeStore{
			createContactFn: func(req *models.ContactRequest) (*models.ContactSubmission, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}

		h := NewContactHandler(db)
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"  ","contact":"a@b.com","message":"hi"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		db := &fakeStore{
			createContactFn: func(req *models.ContactRequest) (*models.ContactSubmission, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}

		h := NewContactHandler(db)
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"A","contact":"a@b.com","message":"hi"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})
}

func TestListSubmissions(t *testing.T) {
	t.Run("passes the status filter through", func(t *testing.T) {
		var gotStatus string
		db := &fakeStore{
			listContactsFn: func(status string) ([]models.ContactSubmission, error) {
				gotStatus = status
				return []models.ContactSubmission{}, nil
			},
		}

		h := NewContactHandler(db)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/messages?status=read", nil)
		rec := httptest.NewRecorder()
		h.ListSubmissions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "read", gotStatus)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		h := NewContactHandler(&fakeStore{})
		req := httptest.NewRequest(http.MethodGet, "/api/admin/messages?status=spam", nil)
		rec := httptest.NewRecorder()
		h.ListSubmissions(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	var gotID string
	var gotStatus models.ContactStatus
	db := &fakeStore{
		updateStatusFn: func(id string, status models.ContactStatus) error {
			gotID = id
			gotStatus = status
			return nil
		},
	}

	r := chi.NewRouter()
	h := NewContactHandler(db)
	r.Patch("/messages/{id}/status", h.UpdateStatus)

	req := httptest.NewRequest(http.MethodPatch, "/messages/c1/status",
		strings.NewReader(`{"status":"archived"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", gotID)
	assert.Equal(t, models.ContactArchived, gotStatus)
}
