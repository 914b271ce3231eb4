package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/api/response"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/go-chi/chi/v5"
)

// Briefs serves the saved-brief routes.
type Briefs struct {
	Store       briefs.Store
	DefaultMode analyzer.Mode
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// CreateBriefRequest is the body of POST /api/v1/briefs.
type CreateBriefRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Brief string `json:"brief"`
	Mode  string `json:"mode"`
}

func (h *Briefs) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// List handles GET /api/v1/briefs. With ?q= it searches instead of listing.
func (h *Briefs) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}

	var (
		list []briefs.SavedBrief
		err  error
	)
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		list, err = h.Store.Search(q, limit)
	} else {
		list, err = h.Store.List()
		if err == nil && limit > 0 && len(list) > limit {
			list = list[:limit]
		}
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, response.CodeInternal, "Failed to read saved briefs", nil)
		return
	}
	response.JSON(w, list)
}

// Create handles POST /api/v1/briefs: analyze and save in one step.
func (h *Briefs) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid JSON body", nil)
		return
	}
	if strings.TrimSpace(req.Brief) == "" {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, "brief is required", nil)
		return
	}
	mode, ok := resolveMode(w, req.Mode, h.DefaultMode)
	if !ok {
		return
	}

	saved := briefs.NewSavedBrief(req.Title, req.Brief, analyzer.Analyze(req.Brief, mode), h.now())
	if req.ID != "" {
		saved.ID = req.ID
	}
	if err := h.Store.Save(saved); err != nil {
		response.Error(w, http.StatusInternalServerError, response.CodeInternal, "Failed to save brief", nil)
		return
	}
	response.Created(w, saved)
}

// Get handles GET /api/v1/briefs/{id}.
func (h *Briefs) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookup(w, r)
	if !ok {
		return
	}
	response.JSON(w, b)
}

// Delete handles DELETE /api/v1/briefs/{id}.
func (h *Briefs) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	response.NoContent(w)
}

// Export handles GET /api/v1/briefs/{id}/export?format=.
func (h *Briefs) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, err.Error(),
			map[string]any{"allowed": export.Formats})
		return
	}

	b, ok := h.lookup(w, r)
	if !ok {
		return
	}

	body, err := export.Encode(format, b.Title, b.Analysis)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, response.CodeInternal, "Failed to export analysis", nil)
		return
	}
	response.Attachment(w, format.ContentType(), export.FileName(format, h.now()), body)
}

func (h *Briefs) lookup(w http.ResponseWriter, r *http.Request) (*briefs.SavedBrief, bool) {
	b, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return nil, false
	}
	return b, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, briefs.ErrNotFound) {
		response.Error(w, http.StatusNotFound, response.CodeNotFound, "Brief not found", nil)
		return
	}
	response.Error(w, http.StatusInternalServerError, response.CodeInternal, "Failed to access saved briefs", nil)
}
