package store

import (
	"context"
	"sync"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// Memory is an in-memory Store used by tests and by serve --offline.
type Memory struct {
	mu        sync.RWMutex
	countries map[string]country.CountryData
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{countries: map[string]country.CountryData{}}
}

// NewMemoryFrom creates an in-memory store pre-populated with the given
// table. The map is copied.
func NewMemoryFrom(countries map[string]country.CountryData) *Memory {
	m := NewMemory()
	for slug, data := range countries {
		m.countries[slug] = data
	}
	return m
}

// LoadAll returns a copy of every stored record.
func (m *Memory) LoadAll(ctx context.Context) (map[string]country.CountryData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]country.CountryData, len(m.countries))
	for slug, data := range m.countries {
		out[slug] = data
	}
	return out, nil
}

// Get reads one record by slug.
func (m *Memory) Get(ctx context.Context, slug string) (country.CountryData, bool, error) {
	if err := ctx.Err(); err != nil {
		return country.CountryData{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.countries[slug]
	return data, ok, nil
}

// Save overwrites the full record for slug. Last write wins.
func (m *Memory) Save(ctx context.Context, slug string, data country.CountryData) error {
	if err := ValidateSave(slug, data); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.countries[slug] = data
	return nil
}

// Delete removes the record for slug. Deleting an absent slug is not an
// error; the end state is the same.
func (m *Memory) Delete(ctx context.Context, slug string) error {
	if err := ValidateDelete(slug); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.countries, slug)
	return nil
}

// SeedAll replaces the stored records for every slug in the given table
// in one step.
func (m *Memory) SeedAll(ctx context.Context, countries map[string]country.CountryData) error {
	for slug, data := range countries {
		if err := ValidateSave(slug, data); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for slug, data := range countries {
		m.countries[slug] = data
	}
	return nil
}
