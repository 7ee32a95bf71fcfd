package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"saunaandcold/internal/app"
	"saunaandcold/internal/domain"
)

type Handlers struct {
	Q       *app.QueryService
	W       *app.WaitlistService
	BaseURL string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/saunas", h.regionIndex)
	s.mux.Get("/saunas/{region}", h.regionView)
	s.mux.Get("/saunas/{region}/{city}", h.cityView)
	s.mux.Get("/saunas/{region}/{city}/{slug}", h.facilityDetail)

	// legacy flat URLs redirect to the canonical hierarchical form
	s.mux.Get("/sauna/{slug}", h.legacyRedirect)

	s.mux.Get("/sitemap.xml", h.sitemap)
	s.mux.Post("/api/waitlist", h.waitlist)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

func (h *Handlers) regionIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.RegionIndex(r.Context(), domain.CategorySauna))
}

func (h *Handlers) regionView(w http.ResponseWriter, r *http.Request) {
	view, err := h.Q.RegionView(r.Context(), domain.CategorySauna, chi.URLParam(r, "region"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "no facilities in this region")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) cityView(w http.ResponseWriter, r *http.Request) {
	view, err := h.Q.CityView(r.Context(), domain.CategorySauna, chi.URLParam(r, "region"), chi.URLParam(r, "city"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "no facilities in this city")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) facilityDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Q.FacilityByPath(r.Context(), domain.CategorySauna,
		chi.URLParam(r, "region"), chi.URLParam(r, "city"), chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "facility not found")
		return
	}

	etag, body := calcETagAndBody(detail)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write facility detail body")
	}
}

func (h *Handlers) legacyRedirect(w http.ResponseWriter, r *http.Request) {
	path, err := h.Q.CanonicalForSlug(r.Context(), domain.CategorySauna, chi.URLParam(r, "slug"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "facility not found")
		return
	}
	http.Redirect(w, r, path, http.StatusMovedPermanently)
}

func (h *Handlers) waitlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email  string `json:"email"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}

	meta := domain.WaitlistMeta{
		UserAgent: r.UserAgent(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	entry, err := h.W.Join(r.Context(), req.Email, req.Source, meta)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Successfully added to waitlist",
			"data":    entry,
		})
	case errors.Is(err, domain.ErrInvalidEmail):
		writeProblem(w, http.StatusBadRequest, "Invalid Email", "Valid email address is required")
	case errors.Is(err, domain.ErrDuplicate):
		writeProblem(w, http.StatusConflict, "Already Signed Up", "This email is already on our waitlist!")
	case errors.Is(err, domain.ErrUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "Service temporarily unavailable")
	default:
		log.Error().Err(err).Msg("waitlist signup failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "Failed to add email to waitlist")
	}
}
