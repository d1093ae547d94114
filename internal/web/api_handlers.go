package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/dossier"
	"github.com/Alan-Biju/global-visa/internal/query"
	"github.com/Alan-Biju/global-visa/internal/selection"
	"github.com/Alan-Biju/global-visa/internal/store"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// countrySummary is one row in the list response.
type countrySummary struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	Categories []string `json:"categories"`
}

// handleAPICountries serves GET /api/countries.
func (s *Server) handleAPICountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if state, msg := s.directoryStatus(r.Context()); state == store.StateFailed {
		apiError(w, "country directory unavailable: "+msg, http.StatusServiceUnavailable)
		return
	}

	entries := s.dir.List()
	list := make([]countrySummary, len(entries))
	for i, e := range entries {
		list[i] = countrySummary{
			Slug:       e.Slug,
			Name:       e.Data.Name,
			Code:       e.Data.Code,
			Categories: e.Data.Categories(),
		}
	}
	apiJSON(w, list, http.StatusOK)
}

// handleAPICountry routes /api/countries/{slug}: read for everyone,
// write and delete only when a writable store is attached.
func (s *Server) handleAPICountry(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/countries/")
	if slug == "" || strings.Contains(slug, "/") {
		apiError(w, "invalid country id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.apiGetCountry(w, r, slug)
	case http.MethodPost:
		s.apiSaveCountry(w, r, slug)
	case http.MethodDelete:
		s.apiDeleteCountry(w, r, slug)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiGetCountry(w http.ResponseWriter, r *http.Request, slug string) {
	if state, msg := s.directoryStatus(r.Context()); state == store.StateFailed {
		apiError(w, "country directory unavailable: "+msg, http.StatusServiceUnavailable)
		return
	}

	data, ok := s.dir.Get(slug)
	if !ok {
		apiError(w, "country not found", http.StatusNotFound)
		return
	}
	apiJSON(w, data, http.StatusOK)
}

func (s *Server) apiSaveCountry(w http.ResponseWriter, r *http.Request, slug string) {
	if s.store == nil {
		apiError(w, "read-only dataset", http.StatusServiceUnavailable)
		return
	}

	var data country.CountryData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	slug = strings.ToLower(slug)
	if err := s.store.Save(r.Context(), slug, data); err != nil {
		if errors.Is(err, store.ErrInvalid) {
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"slug": slug}, http.StatusOK)
}

func (s *Server) apiDeleteCountry(w http.ResponseWriter, r *http.Request, slug string) {
	if s.store == nil {
		apiError(w, "read-only dataset", http.StatusServiceUnavailable)
		return
	}

	if err := s.store.Delete(r.Context(), slug); err != nil {
		if errors.Is(err, store.ErrInvalid) {
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"slug": slug}, http.StatusOK)
}

// handleAPIDossier serves GET /api/dossier?origin=&dest=&type=.
func (s *Server) handleAPIDossier(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if state, msg := s.directoryStatus(r.Context()); state == store.StateFailed {
		apiError(w, "country directory unavailable: "+msg, http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	view, err := s.resolveView(q.Get("origin"), q.Get("dest"), q.Get("type"))
	if err != nil {
		switch {
		case errors.Is(err, dossier.ErrNotFound),
			errors.Is(err, selection.ErrUnknownCountry),
			errors.Is(err, selection.ErrUnknownCategory):
			apiError(w, "visa data not found", http.StatusNotFound)
		default:
			apiError(w, err.Error(), http.StatusBadRequest)
		}
		return
	}
	apiJSON(w, view, http.StatusOK)
}

// handleAPIQuery serves POST /api/query.
func (s *Server) handleAPIQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req query.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	ticket, err := query.Compose(req)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]interface{}{
		"reference": ticket.Reference,
		"sent":      false,
	}
	if sendErr := s.mailer.Send(ticket); sendErr == nil {
		resp["sent"] = true
	} else {
		resp["mailto"] = query.MailtoURL(s.cfg.SupportEmail, ticket)
	}
	apiJSON(w, resp, http.StatusOK)
}
