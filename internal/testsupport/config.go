package testsupport

import (
	"path/filepath"
	"testing"

	"gpalbums/internal/config"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
// The reference year is pinned so year-less date handling is reproducible.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = ""
	cfg.Dates.ReferenceYear = 2024
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config.Validate: %v", err)
	}
	return &cfg
}
