package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Alan-Biju/global-visa/internal/config"
	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/store"
)

// failingStore simulates an unreachable document store.
type failingStore struct{}

func (failingStore) LoadAll(ctx context.Context) (map[string]country.CountryData, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Get(ctx context.Context, slug string) (country.CountryData, bool, error) {
	return country.CountryData{}, false, errors.New("connection refused")
}

func (failingStore) Save(ctx context.Context, slug string, data country.CountryData) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(ctx context.Context, slug string) error {
	return errors.New("connection refused")
}

func (failingStore) SeedAll(ctx context.Context, countries map[string]country.CountryData) error {
	return errors.New("connection refused")
}

func testConfig() config.Config {
	return config.Config{
		BaseURL:       "http://localhost:8080",
		DefaultOrigin: "india",
		SupportEmail:  "support@globalvisa.com",
	}
}

// staticServer serves the built-in dataset read-only.
func staticServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(country.Static(), nil, testConfig())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s
}

// storedServer serves the built-in dataset through a writable memory
// store behind a remote directory.
func storedServer(t *testing.T) (*Server, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	for _, e := range country.Static().List() {
		if err := mem.Save(context.Background(), e.Slug, e.Data); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
	remote := store.NewRemote(mem)
	s, err := NewServer(remote, mem, testConfig())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s, mem
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHomeListsCountries(t *testing.T) {
	rec := get(t, staticServer(t), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"India", "Japan", "Germany"} {
		if !strings.Contains(body, want) {
			t.Errorf("home missing %q", want)
		}
	}
}

func TestHomeUnknownPathIs404(t *testing.T) {
	rec := get(t, staticServer(t), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestServiceMapPinPreseedsDestination(t *testing.T) {
	rec := get(t, staticServer(t), "/service?dest=japan")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "destination-chosen") {
		t.Error("map pin entry must land at destination-chosen")
	}
	if !strings.Contains(body, "Short Term Visa") {
		t.Error("categories for the destination must be offered")
	}
}

func TestServiceUnknownOriginShowsError(t *testing.T) {
	rec := get(t, staticServer(t), "/service?origin=atlantis")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown country") {
		t.Error("expected the flow error in the page")
	}
}

func TestDetailsRendersDossier(t *testing.T) {
	rec := get(t, staticServer(t), "/details?origin=india&dest=japan&type=Short+Term+Visa")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Japan", "Short Term Visa", "Application Process", "Download PDF"} {
		if !strings.Contains(body, want) {
			t.Errorf("details missing %q", want)
		}
	}
}

func TestDetailsRendersChecklistAndPhotoSpecs(t *testing.T) {
	rec := get(t, staticServer(t), "/details?origin=india&dest=japan&type=Short+Term+Visa")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	// The sections after the checklist must still render.
	for _, want := range []string{"Tourist Visa Checklist", "Forms and Downloads", "Photo Specifications"} {
		if !strings.Contains(body, want) {
			t.Errorf("details missing %q", want)
		}
	}
	if strings.Contains(body, "Error rendering template") {
		t.Error("page must render to completion")
	}
}

func TestDetailsUnknownCategoryIsNotFoundPage(t *testing.T) {
	rec := get(t, staticServer(t), "/details?origin=india&dest=japan&type=Space+Visa")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Data Not Found") {
		t.Error("expected the not-found page")
	}
}

func TestDetailsSameCountryRejected(t *testing.T) {
	rec := get(t, staticServer(t), "/details?origin=india&dest=india&type=Short+Term+Visa")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestExportDownloadHeaders(t *testing.T) {
	rec := get(t, staticServer(t), "/dossier/export.pdf?origin=india&dest=japan&type=Short+Term+Visa&mode=download")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment;") {
		t.Errorf("disposition = %q, want attachment", cd)
	}
	if !strings.Contains(cd, "Japan_Short-Term-Visa_Dossier.pdf") {
		t.Errorf("disposition = %q, want dossier filename", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body is not a PDF")
	}
}

func TestExportViewIsInline(t *testing.T) {
	rec := get(t, staticServer(t), "/dossier/export.pdf?origin=india&dest=japan&type=Short+Term+Visa&mode=view")

	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "inline;") {
		t.Errorf("disposition = %q, want inline", cd)
	}
}

func TestQueryFormReturnsMailtoWithoutSMTP(t *testing.T) {
	s := staticServer(t)
	rec := postForm(t, s, "/query", url.Values{
		"name":        {"Asha Nair"},
		"contact":     {"+91 98765 43210"},
		"destination": {"Japan"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "mailto:support@globalvisa.com") {
		t.Error("expected a mailto fallback link")
	}
}

func TestQueryValidationErrorShown(t *testing.T) {
	s := staticServer(t)
	rec := postForm(t, s, "/query", url.Values{"name": {""}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name is required") {
		t.Error("expected the validation message in the page")
	}
}

func TestHomeShowsFailureBanner(t *testing.T) {
	remote := store.NewRemote(failingStore{})
	s, err := NewServer(remote, nil, testConfig())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unavailable") {
		t.Error("expected the failure banner")
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, staticServer(t), "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("health = %d %q", rec.Code, rec.Body.String())
	}
}
