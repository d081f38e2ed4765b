package fault

import (
	"errors"
	"io"
	"testing"
)

func TestWrapClassification(t *testing.T) {
	err := Wrap(ErrNotFound, "library", "delete", "no album for url x", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, should match ErrNotFound", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Error("err should not match other markers")
	}
	if got := err.Error(); got != "not found: library: delete: no album for url x" {
		t.Errorf("message: %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	err := Wrap(ErrPersistence, "store", "save", "write temp file", io.ErrShortWrite)
	if !errors.Is(err, ErrPersistence) || !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("err = %v, should match both marker and cause", err)
	}
}

func TestWrapDefaults(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("nil marker should default to ErrPersistence: %v", err)
	}
	if got := err.Error(); got != "persistence error: library failure" {
		t.Errorf("message: %q", got)
	}
}
