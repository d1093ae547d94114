// Package dossier assembles the requirement dossier for one completed
// selection.
package dossier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// ErrNotFound reports a selection whose destination or category is not
// in the directory: a stale link, data edited mid-session, or malformed
// query parameters. It is a user-visible outcome, not a crash.
var ErrNotFound = errors.New("visa data not found")

// defaultPhotoSpecs fills in when a category has no photo requirement
// text of its own.
const defaultPhotoSpecs = "Standard passport size photograph with white background. Confirm exact dimensions with the consulate."

// Item is one requirement or process step with its 1-based position.
type Item struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

// View is the assembled dossier handed to display and export. Optional
// source fields come through as empty slices, never nil.
type View struct {
	OriginName      string `json:"originName"`
	DestinationName string `json:"destinationName"`
	DestinationCode string `json:"destinationCode"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	Duration        string `json:"duration"`
	Cost            string `json:"cost"`

	Requirements []Item `json:"requirements"`
	Process      []Item `json:"process"`

	// CategoryFormalities come from the visa category; CountryFormalities
	// are country-wide. Both render, attributed to their source.
	CategoryFormalities []string `json:"categoryFormalities"`
	CountryFormalities  []string `json:"countryFormalities"`

	Checklists    []country.ChecklistItem `json:"checklists"`
	Downloads     []country.DownloadItem  `json:"downloads"`
	PhotoSpecs    string                  `json:"photoSpecs"`
	CategoryFiles []country.File          `json:"categoryFiles"`
	CountryFiles  []country.File          `json:"countryFiles"`

	// Instant marks e-visa style categories: requirements are replaced
	// by a contact-support prompt in normal display.
	Instant bool `json:"instant"`
}

// Resolve looks up the selection's destination and category and builds
// the dossier view. A missing destination or category yields ErrNotFound.
func Resolve(dir country.Directory, sel country.Selection) (*View, error) {
	dest, ok := dir.Get(sel.DestinationID)
	if !ok {
		return nil, fmt.Errorf("%w: destination %q", ErrNotFound, sel.DestinationID)
	}
	details, ok := dest.Visa[sel.VisaType]
	if !ok {
		return nil, fmt.Errorf("%w: category %q for %q", ErrNotFound, sel.VisaType, sel.DestinationID)
	}

	photoSpecs := details.PhotoSpecs
	if photoSpecs == "" {
		photoSpecs = defaultPhotoSpecs
	}

	return &View{
		OriginName:      sel.OriginName,
		DestinationName: dest.Name,
		DestinationCode: dest.Code,
		Category:        sel.VisaType,
		Description:     details.Description,
		Duration:        details.Duration,
		Cost:            details.Cost,

		Requirements: numbered(details.Requirements),
		Process:      numbered(details.Process),

		CategoryFormalities: nonNil(details.Formalities),
		CountryFormalities:  nonNil(dest.Formalities),

		Checklists:    nonNil(details.Checklists),
		Downloads:     nonNil(details.Downloads),
		PhotoSpecs:    photoSpecs,
		CategoryFiles: nonNil(details.Files),
		CountryFiles:  nonNil(dest.Files),

		Instant: IsInstantCategory(sel.VisaType),
	}, nil
}

// IsInstantCategory reports whether a category label names an e-visa
// style instant category, by case-insensitive substring.
func IsInstantCategory(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "e-visa") || strings.Contains(l, "e visa")
}

// numbered assigns 1-based positions following display order.
func numbered(items []string) []Item {
	out := make([]Item, len(items))
	for i, text := range items {
		out[i] = Item{Position: i + 1, Text: text}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
