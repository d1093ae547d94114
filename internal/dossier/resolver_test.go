package dossier

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Alan-Biju/global-visa/internal/country"
)

func scenarioDirectory() country.Directory {
	return country.NewTable(map[string]country.CountryData{
		"india": {
			Name: "India",
			Code: "IN",
			Visa: map[string]country.VisaCategoryDetails{
				"Tourist Visa": {
					Requirements: []string{"Passport", "Photo", "Ticket"},
					Duration:     "30 Days",
					Cost:         "$25",
				},
				"e-Visa Express": {
					Requirements: []string{"Passport scan"},
				},
			},
			Formalities: []string{"Immigration check upon arrival"},
			Files:       []country.File{{Name: "Country Guide", URL: "https://example.com/in.pdf"}},
		},
	})
}

func tourists() country.Selection {
	return country.Selection{
		OriginID:        "japan",
		OriginName:      "Japan",
		DestinationID:   "india",
		DestinationName: "India",
		VisaType:        "Tourist Visa",
	}
}

func TestResolveKnownCategory(t *testing.T) {
	v, err := Resolve(scenarioDirectory(), tourists())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if len(v.Requirements) != 3 {
		t.Fatalf("got %d requirements, want 3", len(v.Requirements))
	}
	if v.Duration != "30 Days" {
		t.Errorf("duration = %q, want %q", v.Duration, "30 Days")
	}
	if v.Cost != "$25" {
		t.Errorf("cost = %q, want %q", v.Cost, "$25")
	}
	if v.OriginName != "Japan" || v.DestinationName != "India" {
		t.Errorf("route = %s -> %s", v.OriginName, v.DestinationName)
	}
}

func TestResolveUnknownCategory(t *testing.T) {
	sel := tourists()
	sel.VisaType = "Work Visa"

	if _, err := Resolve(scenarioDirectory(), sel); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestResolveUnknownDestination(t *testing.T) {
	sel := tourists()
	sel.DestinationID = "atlantis"

	if _, err := Resolve(scenarioDirectory(), sel); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestResolveNumbering(t *testing.T) {
	v, err := Resolve(scenarioDirectory(), tourists())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := []Item{
		{Position: 1, Text: "Passport"},
		{Position: 2, Text: "Photo"},
		{Position: 3, Text: "Ticket"},
	}
	if !reflect.DeepEqual(v.Requirements, want) {
		t.Errorf("requirements = %+v, want %+v", v.Requirements, want)
	}
}

func TestResolveOptionalFieldsNeverNil(t *testing.T) {
	v, err := Resolve(scenarioDirectory(), tourists())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if v.Process == nil || v.CategoryFormalities == nil || v.Checklists == nil ||
		v.Downloads == nil || v.CategoryFiles == nil || v.CountryFiles == nil {
		t.Error("optional fields must resolve to empty slices, not nil")
	}
	if v.PhotoSpecs == "" {
		t.Error("expected generic photo specs fallback")
	}
}

func TestResolveFormalitiesAttribution(t *testing.T) {
	dir := country.NewTable(map[string]country.CountryData{
		"japan": {
			Name: "Japan",
			Code: "JP",
			Visa: map[string]country.VisaCategoryDetails{
				"Work Permit": {
					Requirements: []string{"COE"},
					Formalities:  []string{"City Hall registration within 14 days"},
				},
			},
			Formalities: []string{"Visit Japan Web registration"},
		},
	})

	v, err := Resolve(dir, country.Selection{DestinationID: "japan", VisaType: "Work Permit"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(v.CategoryFormalities) != 1 || v.CategoryFormalities[0] != "City Hall registration within 14 days" {
		t.Errorf("category formalities = %v", v.CategoryFormalities)
	}
	if len(v.CountryFormalities) != 1 || v.CountryFormalities[0] != "Visit Japan Web registration" {
		t.Errorf("country formalities = %v", v.CountryFormalities)
	}
}

func TestResolveIdempotent(t *testing.T) {
	dir := scenarioDirectory()

	a, err := Resolve(dir, tourists())
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	b, err := Resolve(dir, tourists())
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("resolving twice with unchanged inputs differed")
	}
}

func TestInstantCategoryFlag(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"e-Visa Express", true},
		{"E-VISA", true},
		{"Instant e Visa", true},
		{"Tourist Visa", false},
		{"Work Permit", false},
		{"Television Crew", false},
	}

	for _, tc := range cases {
		if got := IsInstantCategory(tc.label); got != tc.want {
			t.Errorf("IsInstantCategory(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}

	sel := tourists()
	sel.VisaType = "e-Visa Express"
	v, err := Resolve(scenarioDirectory(), sel)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !v.Instant {
		t.Error("expected instant flag on resolved e-visa view")
	}
}

func TestResolveEmptyRequirements(t *testing.T) {
	dir := country.NewTable(map[string]country.CountryData{
		"germany": {
			Name: "Germany",
			Code: "DE",
			Visa: map[string]country.VisaCategoryDetails{
				"Transit Visa": {Description: "Airport transit only."},
			},
		},
	})

	v, err := Resolve(dir, country.Selection{DestinationID: "germany", VisaType: "Transit Visa"})
	if err != nil {
		t.Fatalf("resolve must tolerate empty requirements: %v", err)
	}
	if len(v.Requirements) != 0 {
		t.Errorf("got %d requirements, want 0", len(v.Requirements))
	}
}
