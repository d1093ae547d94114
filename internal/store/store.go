// Package store persists the country directory in a document store.
//
// The remote implementation targets MongoDB: one "countries" collection,
// slug as document key, full-document writes. Memory provides the same
// surface for tests and offline use.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// ErrInvalid reports a write rejected by local validation, before any
// round trip to the store.
var ErrInvalid = errors.New("invalid country record")

// Store is the document-store surface the directory needs: read all
// documents in the collection, read/write/delete one by key, and a
// batched all-or-nothing seed.
type Store interface {
	LoadAll(ctx context.Context) (map[string]country.CountryData, error)
	Get(ctx context.Context, slug string) (country.CountryData, bool, error)
	Save(ctx context.Context, slug string, data country.CountryData) error
	Delete(ctx context.Context, slug string) error
	SeedAll(ctx context.Context, countries map[string]country.CountryData) error
}

// saveInput is what local validation runs against. Slug, name and code
// must all be present before a write is attempted.
type saveInput struct {
	Slug string `validate:"required,lowercase"`
	Name string `validate:"required"`
	Code string `validate:"required"`
}

var validate = validator.New()

// ValidateSave checks the required fields for a save. The returned error
// wraps ErrInvalid and never reflects a store round trip.
func ValidateSave(slug string, data country.CountryData) error {
	in := saveInput{Slug: slug, Name: data.Name, Code: data.Code}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s failed %q", ErrInvalid, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ValidateDelete checks the key for a delete.
func ValidateDelete(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalid)
	}
	return nil
}
