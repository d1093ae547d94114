// Package selection implements the origin -> destination -> visa category
// selection flow.
//
// The flow is strictly ordered: each step unlocks the next, and editing
// an earlier step clears everything downstream of it. The same terminal
// state is reachable without interaction via FromParams, validated
// against the directory exactly like interactive picks.
package selection

import (
	"errors"
	"fmt"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// State names the flow's position.
type State int

const (
	Empty State = iota
	OriginChosen
	DestinationChosen
	CategoryChosen
	Submitted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case OriginChosen:
		return "origin-chosen"
	case DestinationChosen:
		return "destination-chosen"
	case CategoryChosen:
		return "category-chosen"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	// ErrStepLocked reports a pick attempted before its prerequisite.
	ErrStepLocked = errors.New("previous step not completed")
	// ErrUnknownCountry reports a slug absent from the directory.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrUnknownCategory reports a category absent from the destination.
	ErrUnknownCategory = errors.New("unknown visa category")
	// ErrSameCountry reports origin equal to destination at submit time.
	ErrSameCountry = errors.New("origin and destination must differ")
	// ErrIncomplete reports a submit before all three picks are made.
	ErrIncomplete = errors.New("selection incomplete")
)

// Flow is one visitor's pass through the selection steps.
type Flow struct {
	dir         country.Directory
	origin      string
	destination string
	category    string
	submitted   bool
}

// New starts an empty flow over the given directory.
func New(dir country.Directory) *Flow {
	return &Flow{dir: dir}
}

// NewPreseeded starts a flow already at DestinationChosen, for entry
// points that name a destination directly (e.g. a map pin link). The
// caller supplies the default origin.
func NewPreseeded(dir country.Directory, defaultOrigin, destination string) (*Flow, error) {
	f := New(dir)
	if err := f.ChooseOrigin(defaultOrigin); err != nil {
		return nil, err
	}
	if err := f.ChooseDestination(destination); err != nil {
		return nil, err
	}
	return f, nil
}

// State reports the flow's position.
func (f *Flow) State() State {
	switch {
	case f.submitted:
		return Submitted
	case f.category != "":
		return CategoryChosen
	case f.destination != "":
		return DestinationChosen
	case f.origin != "":
		return OriginChosen
	default:
		return Empty
	}
}

// Origin returns the chosen origin slug, empty if none.
func (f *Flow) Origin() string { return f.origin }

// Destination returns the chosen destination slug, empty if none.
func (f *Flow) Destination() string { return f.destination }

// Category returns the chosen category identifier, empty if none.
func (f *Flow) Category() string { return f.category }

// OriginChoices lists every country as an origin candidate.
func (f *Flow) OriginChoices() []country.Entry {
	return f.dir.List()
}

// DestinationChoices lists destination candidates, excluding the chosen
// origin. Empty until an origin is chosen.
func (f *Flow) DestinationChoices() []country.Entry {
	if f.origin == "" {
		return nil
	}
	var out []country.Entry
	for _, e := range f.dir.List() {
		if e.Slug != f.origin {
			out = append(out, e)
		}
	}
	return out
}

// CategoryChoices lists the chosen destination's category identifiers.
// Candidates come from the data, not the curated defaults, so custom
// admin-entered categories are selectable. Empty until a destination is
// chosen.
func (f *Flow) CategoryChoices() []string {
	if f.destination == "" {
		return nil
	}
	dest, ok := f.dir.Get(f.destination)
	if !ok {
		return nil
	}
	return dest.Categories()
}

// ChooseOrigin picks the origin and clears destination and category.
func (f *Flow) ChooseOrigin(slug string) error {
	if _, ok := f.dir.Get(slug); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, slug)
	}
	f.origin = slug
	f.destination = ""
	f.category = ""
	f.submitted = false
	return nil
}

// ChooseDestination picks the destination and clears the category.
// Requires an origin.
func (f *Flow) ChooseDestination(slug string) error {
	if f.origin == "" {
		return fmt.Errorf("%w: pick an origin first", ErrStepLocked)
	}
	if _, ok := f.dir.Get(slug); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, slug)
	}
	f.destination = slug
	f.category = ""
	f.submitted = false
	return nil
}

// ChooseCategory picks a visa category that exists on the chosen
// destination. Requires a destination.
func (f *Flow) ChooseCategory(category string) error {
	if f.destination == "" {
		return fmt.Errorf("%w: pick a destination first", ErrStepLocked)
	}
	dest, ok := f.dir.Get(f.destination)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, f.destination)
	}
	if _, ok := dest.Visa[category]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	f.category = category
	f.submitted = false
	return nil
}

// Submit finalizes the flow and produces the selection handed to the
// dossier resolver. Origin != destination is re-checked here so a stale
// combination cannot slip through regardless of edit order.
func (f *Flow) Submit() (country.Selection, error) {
	if f.origin == "" || f.destination == "" || f.category == "" {
		return country.Selection{}, ErrIncomplete
	}
	if f.origin == f.destination {
		return country.Selection{}, ErrSameCountry
	}

	origin, ok := f.dir.Get(f.origin)
	if !ok {
		return country.Selection{}, fmt.Errorf("%w: %q", ErrUnknownCountry, f.origin)
	}
	dest, ok := f.dir.Get(f.destination)
	if !ok {
		return country.Selection{}, fmt.Errorf("%w: %q", ErrUnknownCountry, f.destination)
	}
	if _, ok := dest.Visa[f.category]; !ok {
		return country.Selection{}, fmt.Errorf("%w: %q", ErrUnknownCategory, f.category)
	}

	f.submitted = true
	return country.Selection{
		OriginID:        f.origin,
		OriginName:      origin.Name,
		DestinationID:   f.destination,
		DestinationName: dest.Name,
		VisaType:        f.category,
	}, nil
}

// FromParams reconstructs a submitted selection from three plain
// identifiers, as carried in a results URL. Validation matches the
// interactive path: unknown slugs or categories fail, they never crash.
func FromParams(dir country.Directory, origin, destination, category string) (country.Selection, error) {
	f := New(dir)
	if err := f.ChooseOrigin(origin); err != nil {
		return country.Selection{}, err
	}
	if err := f.ChooseDestination(destination); err != nil {
		return country.Selection{}, err
	}
	if err := f.ChooseCategory(category); err != nil {
		return country.Selection{}, err
	}
	return f.Submit()
}
