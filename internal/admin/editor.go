// Package admin implements the country dataset editor behind the admin
// console.
//
// The editor holds one entry's form state at a time, keyed by a
// user-entered slug. Saves are full-document overwrites with no version
// check: concurrent edits of the same slug resolve last-write-wins,
// which is accepted for the single-operator usage model.
package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/store"
)

// Store is the write path the editor needs from the document store.
type Store interface {
	Get(ctx context.Context, slug string) (country.CountryData, bool, error)
	Save(ctx context.Context, slug string, data country.CountryData) error
	Delete(ctx context.Context, slug string) error
}

// Editor is the admin form state for one country entry.
type Editor struct {
	store Store

	Slug        string
	Name        string
	Code        string
	Top, Left   float64
	PhoneNumber string
	Files       []country.File
	Formalities []string
	Visa        map[string]country.VisaCategoryDetails

	// Status is the operator-facing outcome of the last operation.
	Status string
}

// NewEditor creates an empty editor over the given store.
func NewEditor(s Store) *Editor {
	return &Editor{store: s, Visa: map[string]country.VisaCategoryDetails{}}
}

// Reset clears the form back to the new-entry state.
func (e *Editor) Reset() {
	*e = Editor{store: e.store, Visa: map[string]country.VisaCategoryDetails{}}
}

// Load populates the form from the store. An absent slug leaves the form
// in new-entry state with a status message; it is not an error.
func (e *Editor) Load(ctx context.Context, slug string) error {
	slug = normalizeSlug(slug)
	if slug == "" {
		e.Status = "Error: enter a country ID to load."
		return fmt.Errorf("slug is required")
	}

	data, ok, err := e.store.Get(ctx, slug)
	if err != nil {
		e.Status = "Error loading: " + err.Error()
		return err
	}

	e.Reset()
	e.Slug = slug
	if !ok {
		e.Status = "No existing data found for this ID. Creating new."
		return nil
	}

	e.Name = data.Name
	e.Code = data.Code
	if data.Coordinates != nil {
		e.Top = data.Coordinates.Top
		e.Left = data.Coordinates.Left
	}
	e.PhoneNumber = data.PhoneNumber
	e.Files = append([]country.File(nil), data.Files...)
	e.Formalities = append([]string(nil), data.Formalities...)
	e.Visa = map[string]country.VisaCategoryDetails{}
	for label, details := range data.Visa {
		e.Visa[label] = details
	}
	e.Status = "Loaded existing data."
	return nil
}

// Save validates the required fields locally, then overwrites the full
// document. Validation failures never reach the store; store failures
// pass through verbatim and the form state is preserved for retry.
func (e *Editor) Save(ctx context.Context) error {
	e.Slug = normalizeSlug(e.Slug)

	data := e.assemble()
	if err := store.ValidateSave(e.Slug, data); err != nil {
		e.Status = "Error: country ID, name, and code are required."
		return err
	}

	if err := e.store.Save(ctx, e.Slug, data); err != nil {
		e.Status = "Error: " + err.Error()
		return err
	}
	e.Status = "Saved successfully."
	return nil
}

// Delete removes the entry after explicit confirmation and resets the
// form.
func (e *Editor) Delete(ctx context.Context, confirmed bool) error {
	e.Slug = normalizeSlug(e.Slug)
	if e.Slug == "" {
		e.Status = "Error: enter a country ID to delete."
		return fmt.Errorf("slug is required")
	}
	if !confirmed {
		e.Status = "Delete not confirmed."
		return fmt.Errorf("delete requires confirmation")
	}

	if err := e.store.Delete(ctx, e.Slug); err != nil {
		e.Status = "Error: " + err.Error()
		return err
	}
	e.Reset()
	e.Status = "Country deleted successfully."
	return nil
}

// assemble builds the full document from form state. Blank formality
// rows are dropped; everything else is written as entered.
func (e *Editor) assemble() country.CountryData {
	formalities := make([]string, 0, len(e.Formalities))
	for _, f := range e.Formalities {
		if strings.TrimSpace(f) != "" {
			formalities = append(formalities, f)
		}
	}

	data := country.CountryData{
		Name:        e.Name,
		Code:        e.Code,
		Visa:        e.Visa,
		Files:       e.Files,
		Formalities: formalities,
		PhoneNumber: e.PhoneNumber,
	}
	if e.Top != 0 || e.Left != 0 {
		data.Coordinates = &country.Coordinates{Top: e.Top, Left: e.Left}
	}
	return data
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
