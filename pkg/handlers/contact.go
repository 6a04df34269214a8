package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/utils"
)

// ContactHandler serves the public contact form endpoint and the admin
// message inbox.
type ContactHandler struct {
	db database.DatabaseInterface
}

// NewContactHandler creates the contact handler.
func NewContactHandler(db database.DatabaseInterface) *ContactHandler {
	return &ContactHandler{db: db}
}

// Submit handles POST /api/contact. The response shape here is flat
// JSON ({"message"} / {"error"}), not the admin envelope: the public
// site's form script consumes these fields directly.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFlatJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	defer r.Body.Close()

	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Contact == "" || req.Message == "" {
		writeFlatJSON(w, http.StatusBadRequest, map[string]string{"error": "name, contact and message are required"})
		return
	}

	if _, err := h.db.CreateContactSubmission(&req); err != nil {
		fmt.Printf("❌ Failed to save contact submission: %v\n", err)
		writeFlatJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save your message, please try again later"})
		return
	}

	writeFlatJSON(w, http.StatusOK, map[string]string{"message": "Thank you! Your message has been received."})
}

// ListSubmissions handles GET /api/admin/messages with an optional
// ?status= filter.
func (h *ContactHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := utils.GetQueryParam(r, "status", "")
	if status != "" && !models.ValidContactStatus(status) {
		utils.WriteBadRequestResponse(w, "Invalid status: must be new, read or archived")
		return
	}

	submissions, err := h.db.ListContactSubmissions(status)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to load messages")
		return
	}

	utils.WriteSuccessResponse(w, submissions)
}

// UpdateStatus handles PATCH /api/admin/messages/{id}/status.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := utils.ParseJSONBody(r, &body); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	if !models.ValidContactStatus(body.Status) {
		utils.WriteBadRequestResponse(w, "Invalid status: must be new, read or archived")
		return
	}

	if err := h.db.UpdateContactStatus(id, models.ContactStatus(body.Status)); err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to update message status")
		return
	}

	utils.WriteSuccessResponse(w, map[string]string{"id": id, "status": body.Status})
}

// writeFlatJSON writes an unwrapped JSON object.
func writeFlatJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Printf("⚠️ Failed to encode response: %v\n", err)
	}
}
