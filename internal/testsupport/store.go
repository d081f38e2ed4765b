package testsupport

import (
	"testing"

	"gpalbums/internal/album"
	"gpalbums/internal/config"
	"gpalbums/internal/library"
	"gpalbums/internal/logging"
	"gpalbums/internal/store"
)

// MustOpenStore opens a record store for tests.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg.DatabasePath(), cfg.LockPath(), logging.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	return st
}

// MustOpenService opens a library service for tests.
func MustOpenService(t testing.TB, cfg *config.Config) *library.Service {
	t.Helper()

	svc, err := library.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	return svc
}

// SeedAlbum adds a record to the store and fails the test on conflict.
func SeedAlbum(t testing.TB, st *store.Store, rec *album.Record) {
	t.Helper()

	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if err := st.Add(rec); err != nil {
		t.Fatalf("store.Add(%s): %v", rec.URL, err)
	}
}
