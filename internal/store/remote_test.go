package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// failingStore always fails its bulk read.
type failingStore struct {
	Memory
}

func (f *failingStore) LoadAll(ctx context.Context) (map[string]country.CountryData, error) {
	return nil, errors.New("network unreachable")
}

func TestRemoteStartsLoading(t *testing.T) {
	r := NewRemote(NewMemory())

	state, _ := r.State()
	if state != StateLoading {
		t.Errorf("state = %v, want loading", state)
	}
	if entries := r.List(); len(entries) != 0 {
		t.Errorf("got %d entries before load, want 0", len(entries))
	}
}

func TestRemoteLoadSuccess(t *testing.T) {
	m := NewMemory()
	if err := m.Save(context.Background(), "india", testCountry()); err != nil {
		t.Fatalf("save: %v", err)
	}

	r := NewRemote(m)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	state, _ := r.State()
	if state != StateReady {
		t.Fatalf("state = %v, want ready", state)
	}
	if _, ok := r.Get("india"); !ok {
		t.Error("expected india after load")
	}
	if entries := r.List(); len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestRemoteLoadFailure(t *testing.T) {
	r := NewRemote(&failingStore{})

	if err := r.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}

	state, msg := r.State()
	if state != StateFailed {
		t.Fatalf("state = %v, want failed", state)
	}
	if msg == "" {
		t.Error("expected recorded error message")
	}
	// Empty-after-error, not loading.
	if entries := r.List(); len(entries) != 0 {
		t.Errorf("got %d entries after failure, want 0", len(entries))
	}
}

func TestRemoteNoAutomaticRetry(t *testing.T) {
	r := NewRemote(&failingStore{})

	if err := r.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}

	// A second Load surfaces the recorded failure without refetching.
	err := r.Load(context.Background())
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want UnavailableError", err)
	}
}

func TestRemoteCanceledLoadDiscarded(t *testing.T) {
	m := NewMemory()
	if err := m.Save(context.Background(), "india", testCountry()); err != nil {
		t.Fatalf("save: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRemote(m)
	if err := r.Load(ctx); err == nil {
		t.Fatal("expected context error")
	}

	// The canceled fetch is discarded, not applied and not failed.
	state, _ := r.State()
	if state != StateLoading {
		t.Errorf("state = %v, want loading after canceled fetch", state)
	}

	// A fresh attempt with a live context still works.
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if state, _ := r.State(); state != StateReady {
		t.Errorf("state = %v, want ready after reload", state)
	}
}
