package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Alan-Biju/global-visa/internal/country"
)

func testCountry() country.CountryData {
	return country.CountryData{
		Name: "India",
		Code: "IN",
		Visa: map[string]country.VisaCategoryDetails{
			"Tourist Visa": {
				Requirements: []string{"Passport", "Photo", "Ticket"},
				Duration:     "30 Days",
				Cost:         "$25",
			},
		},
		Formalities: []string{"Immigration check upon arrival"},
	}
}

func TestMemorySaveRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	want := testCountry()
	if err := m.Save(ctx, "india", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := m.Get(ctx, "india")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected india after save")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Save(ctx, "india", testCountry()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := m.Delete(ctx, "india"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok, _ := m.Get(ctx, "india"); ok {
		t.Error("expected india gone after delete")
	}
}

func TestMemorySaveValidation(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	cases := []struct {
		name string
		slug string
		data country.CountryData
	}{
		{"empty slug", "", testCountry()},
		{"uppercase slug", "India", testCountry()},
		{"missing name", "india", country.CountryData{Code: "IN"}},
		{"missing code", "india", country.CountryData{Name: "India"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.Save(ctx, tc.slug, tc.data)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("save %s: got %v, want ErrInvalid", tc.name, err)
			}
		})
	}

	if all, _ := m.LoadAll(ctx); len(all) != 0 {
		t.Errorf("store has %d entries after rejected saves, want 0", len(all))
	}
}

func TestMemoryDeleteRequiresSlug(t *testing.T) {
	m := NewMemory()
	if err := m.Delete(context.Background(), ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v, want ErrInvalid", err)
	}
}

func TestMemorySeedAll(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	table := map[string]country.CountryData{
		"india": testCountry(),
		"japan": {Name: "Japan", Code: "JP"},
	}
	if err := m.SeedAll(ctx, table); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := m.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2", len(all))
	}
}

func TestMemorySeedAllRejectsBadEntry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	table := map[string]country.CountryData{
		"india": testCountry(),
		"bad":   {}, // missing name and code
	}
	if err := m.SeedAll(ctx, table); !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}

	// All-or-nothing: the valid entry must not have been applied.
	if all, _ := m.LoadAll(ctx); len(all) != 0 {
		t.Errorf("got %d entries after failed seed, want 0", len(all))
	}
}

func TestMemoryLastWriteWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first := testCountry()
	second := testCountry()
	second.Name = "Republic of India"

	if err := m.Save(ctx, "india", first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := m.Save(ctx, "india", second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, _, _ := m.Get(ctx, "india")
	if got.Name != "Republic of India" {
		t.Errorf("name = %q, want the later write", got.Name)
	}
}
