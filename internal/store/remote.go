package store

import (
	"context"
	"sync"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// State is what a consumer of the remote directory can observe. Loading
// and empty-after-failure are distinct: an empty list while loading means
// "wait", an empty list after failure means "show the error banner".
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Remote is a country.Directory over a Store. The collection is fetched
// once per session; a failed fetch leaves the directory empty with the
// error recorded, and is not retried automatically.
type Remote struct {
	store Store

	mu       sync.Mutex
	state    State
	errMsg   string
	table    *country.Table
	fetching bool
	done     chan struct{}
}

// NewRemote wraps a store. The directory starts in StateLoading with no
// entries until Load completes.
func NewRemote(s Store) *Remote {
	return &Remote{
		store: s,
		state: StateLoading,
		table: country.NewTable(nil),
	}
}

// Load performs the one bulk read. Concurrent callers do not race: the
// first starts the fetch, later ones wait for it. A canceled context
// discards the outcome instead of applying it after the caller is gone.
func (r *Remote) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateLoading {
		r.mu.Unlock()
		return r.loadErr()
	}
	if r.fetching {
		done := r.done
		r.mu.Unlock()
		select {
		case <-done:
			return r.loadErr()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.fetching = true
	r.done = make(chan struct{})
	r.mu.Unlock()

	countries, err := r.store.LoadAll(ctx)

	r.mu.Lock()
	defer func() {
		r.fetching = false
		close(r.done)
		r.mu.Unlock()
	}()

	if ctx.Err() != nil {
		// The caller abandoned the fetch; stay in loading so a fresh
		// session can try again.
		return ctx.Err()
	}
	if err != nil {
		r.state = StateFailed
		r.errMsg = err.Error()
		return err
	}
	r.state = StateReady
	r.table = country.NewTable(countries)
	return nil
}

func (r *Remote) loadErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateFailed {
		return &UnavailableError{Message: r.errMsg}
	}
	return nil
}

// UnavailableError reports that the remote fetch failed and the
// directory is empty.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return "country directory unavailable: " + e.Message
}

// State reports the current state and, when failed, the error message.
func (r *Remote) State() (State, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.errMsg
}

// List returns the loaded entries. Empty while loading or after failure.
func (r *Remote) List() []country.Entry {
	r.mu.Lock()
	table := r.table
	r.mu.Unlock()
	return table.List()
}

// Get looks up one loaded country by slug.
func (r *Remote) Get(slug string) (country.CountryData, bool) {
	r.mu.Lock()
	table := r.table
	r.mu.Unlock()
	return table.Get(slug)
}
