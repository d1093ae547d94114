package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Alan-Biju/global-visa/internal/admin"
	"github.com/Alan-Biju/global-visa/internal/country"
)

type adminData struct {
	Editor      *admin.Editor
	Formalities string // one per line
	VisaJSON    string
	FilesJSON   string
	Seeded      bool
}

// handleAdmin serves the country editor. GET with ?load= populates the
// form from the store; POST applies a save or delete. Every outcome
// comes back as the editor's status line, never a bare error page.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Admin requires a writable store", http.StatusServiceUnavailable)
		return
	}

	ed := admin.NewEditor(s.store)

	switch r.Method {
	case http.MethodGet:
		if slug := r.URL.Query().Get("load"); slug != "" {
			_ = ed.Load(r.Context(), slug)
		}
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		s.applyAdminForm(r, ed)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.render(w, "admin.html", adminView(ed))
}

// applyAdminForm rebuilds the editor from the posted fields and runs
// the requested action.
func (s *Server) applyAdminForm(r *http.Request, ed *admin.Editor) {
	ed.Slug = r.FormValue("id")
	ed.Name = r.FormValue("name")
	ed.Code = r.FormValue("code")
	ed.PhoneNumber = r.FormValue("phone")
	ed.Top, _ = strconv.ParseFloat(r.FormValue("top"), 64)
	ed.Left, _ = strconv.ParseFloat(r.FormValue("left"), 64)

	for _, line := range strings.Split(r.FormValue("formalities"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ed.AddFormality()
			_ = ed.SetFormality(len(ed.Formalities)-1, line)
		}
	}

	if raw := strings.TrimSpace(r.FormValue("visa")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &ed.Visa); err != nil {
			ed.Status = "Error: visa categories are not valid JSON: " + err.Error()
			return
		}
	}
	if raw := strings.TrimSpace(r.FormValue("files")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &ed.Files); err != nil {
			ed.Status = "Error: files are not valid JSON: " + err.Error()
			return
		}
	}

	switch r.FormValue("action") {
	case "load":
		_ = ed.Load(r.Context(), ed.Slug)
	case "save":
		_ = ed.Save(r.Context())
	case "delete":
		_ = ed.Delete(r.Context(), r.FormValue("confirm") == "yes")
	default:
		ed.Status = "Error: unknown action."
	}
}

// handleAdminSeed loads the built-in dataset into the store in one
// batch.
func (s *Server) handleAdminSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.store == nil {
		http.Error(w, "Admin requires a writable store", http.StatusServiceUnavailable)
		return
	}

	ed := admin.NewEditor(s.store)
	data := adminView(ed)

	entries := map[string]country.CountryData{}
	for _, e := range country.Static().List() {
		entries[e.Slug] = e.Data
	}
	if err := s.store.SeedAll(r.Context(), entries); err != nil {
		ed.Status = "Error seeding: " + err.Error()
	} else {
		ed.Status = "Seeded built-in dataset."
		data.Seeded = true
	}
	data.Editor = ed
	s.render(w, "admin.html", data)
}

// adminView flattens editor state into template-friendly strings.
func adminView(ed *admin.Editor) adminData {
	visaJSON, _ := json.MarshalIndent(ed.Visa, "", "  ")
	filesJSON, _ := json.MarshalIndent(ed.Files, "", "  ")
	return adminData{
		Editor:      ed,
		Formalities: strings.Join(ed.Formalities, "\n"),
		VisaJSON:    string(visaJSON),
		FilesJSON:   string(filesJSON),
	}
}
