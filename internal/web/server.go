// Package web provides the HTTP server and handlers for the visa portal
// web UI and its JSON API.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Alan-Biju/global-visa/internal/config"
	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/export"
	"github.com/Alan-Biju/global-visa/internal/logging"
	"github.com/Alan-Biju/global-visa/internal/query"
	"github.com/Alan-Biju/global-visa/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// remoteDirectory is the optional surface a lazily fetched directory
// adds on top of country.Directory. The built-in table never implements
// it and is treated as always ready.
type remoteDirectory interface {
	country.Directory
	Load(ctx context.Context) error
	State() (store.State, string)
}

// Server is the visa portal HTTP server.
type Server struct {
	dir       country.Directory
	store     store.Store // nil when serving the built-in dataset
	exporter  *export.Exporter
	mailer    *query.Mailer
	cfg       config.Config
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a server over a directory and an optional writable
// store. A nil store disables the admin and write API endpoints.
func NewServer(dir country.Directory, st store.Store, cfg config.Config) (*Server, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		dir:   dir,
		store: st,
		exporter: &export.Exporter{
			SourceURL: cfg.BaseURL + "/details",
		},
		mailer:    query.NewMailer(smtpConfig(cfg), cfg.SupportEmail),
		cfg:       cfg,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/service", s.handleService)
	s.mux.HandleFunc("/details", s.handleDetails)
	s.mux.HandleFunc("/dossier/export.pdf", s.handleExport)
	s.mux.HandleFunc("/query", s.handleQuery)
	s.mux.HandleFunc("/admin", s.handleAdmin)
	s.mux.HandleFunc("/admin/seed", s.handleAdminSeed)
	s.mux.HandleFunc("/api/countries", s.handleAPICountries)
	s.mux.HandleFunc("/api/countries/", s.handleAPICountry)
	s.mux.HandleFunc("/api/dossier", s.handleAPIDossier)
	s.mux.HandleFunc("/api/query", s.handleAPIQuery)
	s.mux.HandleFunc("/health", s.handleHealth)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(addr string) error {
	fmt.Printf("Starting visa portal on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// directoryStatus triggers the remote fetch if one is pending and
// reports the directory's state. Built-in directories are always ready.
func (s *Server) directoryStatus(ctx context.Context) (store.State, string) {
	rd, ok := s.dir.(remoteDirectory)
	if !ok {
		return store.StateReady, ""
	}
	if state, _ := rd.State(); state == store.StateLoading {
		_ = rd.Load(ctx)
	}
	return rd.State()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

func smtpConfig(cfg config.Config) query.SMTPConfig {
	return query.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}
}
