package country

import "sort"

// Entry pairs a directory slug with its country record.
type Entry struct {
	Slug string      `json:"slug"`
	Data CountryData `json:"data"`
}

// Directory is read access to the country dataset. The static table and
// the remote store both satisfy it.
type Directory interface {
	// List returns all entries sorted by display name.
	List() []Entry
	// Get looks up one country by its lowercase slug.
	Get(slug string) (CountryData, bool)
}

// Table is an in-memory Directory over a slug -> CountryData map.
type Table struct {
	countries map[string]CountryData
}

// NewTable builds a Directory from a map. The map is not copied; callers
// hand over ownership.
func NewTable(countries map[string]CountryData) *Table {
	if countries == nil {
		countries = map[string]CountryData{}
	}
	return &Table{countries: countries}
}

// Static returns the built-in country table bundled with the binary.
func Static() *Table {
	return NewTable(builtinCountries())
}

// List returns all entries sorted by display name.
func (t *Table) List() []Entry {
	entries := make([]Entry, 0, len(t.countries))
	for slug, data := range t.countries {
		entries = append(entries, Entry{Slug: slug, Data: data})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Data.Name != entries[j].Data.Name {
			return entries[i].Data.Name < entries[j].Data.Name
		}
		return entries[i].Slug < entries[j].Slug
	})
	return entries
}

// Get looks up one country by slug.
func (t *Table) Get(slug string) (CountryData, bool) {
	data, ok := t.countries[slug]
	return data, ok
}

// Len reports how many countries the table holds.
func (t *Table) Len() int {
	return len(t.countries)
}
