package tags

import (
	"errors"
	"path/filepath"
	"testing"

	"gpalbums/internal/album"
	"gpalbums/internal/fault"
	"gpalbums/internal/logging"
	"gpalbums/internal/store"
)

func newTestIndex(t *testing.T, records ...*album.Record) (*Index, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "albums.jsonl"), filepath.Join(dir, "albums.lock"), logging.NewNop())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	for _, rec := range records {
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		if err := st.Add(rec); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	return NewIndex(st, logging.NewNop()), st
}

func TestAllCountsAndOrder(t *testing.T) {
	ix, _ := newTestIndex(t,
		&album.Record{ID: "1", URL: "u1", Tags: []string{"travel", "family"}},
		&album.Record{ID: "2", URL: "u2", Tags: []string{"travel"}},
		&album.Record{ID: "3", URL: "u3", Tags: []string{"Beach", "travel"}},
		&album.Record{ID: "4", URL: "u4", Tags: []string{"archive"}},
	)

	counts := ix.All("")
	want := []Count{
		{Tag: "travel", Albums: 3},
		{Tag: "archive", Albums: 1},
		{Tag: "Beach", Albums: 1},
		{Tag: "family", Albums: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("counts = %d, want %d: %+v", len(counts), len(want), counts)
	}
	for i, w := range want {
		if counts[i] != w {
			t.Errorf("position %d: got %+v, want %+v", i, counts[i], w)
		}
	}
}

func TestAllSubstringFilter(t *testing.T) {
	ix, _ := newTestIndex(t,
		&album.Record{ID: "1", URL: "u1", Tags: []string{"travel", "family", "Traverse"}},
	)

	counts := ix.All("trav")
	if len(counts) != 2 {
		t.Fatalf("counts: %+v", counts)
	}
	for _, c := range counts {
		if c.Tag != "travel" && c.Tag != "Traverse" {
			t.Errorf("unexpected tag %q", c.Tag)
		}
	}
}

func TestMenu(t *testing.T) {
	ix, _ := newTestIndex(t,
		&album.Record{ID: "1", URL: "u1", Tags: []string{"travel"}},
		&album.Record{ID: "2", URL: "u2", Tags: []string{"travel", "family"}},
	)

	entries, canCreate, err := ix.Menu("u1", "")
	if err != nil {
		t.Fatalf("Menu failed: %v", err)
	}
	if canCreate {
		t.Error("empty filter should never offer creation")
	}
	if len(entries) != 2 {
		t.Fatalf("entries: %+v", entries)
	}
	byTag := map[string]MenuEntry{}
	for _, e := range entries {
		byTag[e.Tag] = e
	}
	if !byTag["travel"].Present {
		t.Error("travel should be marked present on u1")
	}
	if byTag["family"].Present {
		t.Error("family should not be marked present on u1")
	}
}

func TestMenuCanCreate(t *testing.T) {
	ix, _ := newTestIndex(t,
		&album.Record{ID: "1", URL: "u1", Tags: []string{"travel"}},
	)

	if _, canCreate, err := ix.Menu("u1", "newtag"); err != nil || !canCreate {
		t.Errorf("unknown filter should offer creation: canCreate=%v err=%v", canCreate, err)
	}
	// Existing tag names, in any case, are not creatable.
	if _, canCreate, err := ix.Menu("u1", "TRAVEL"); err != nil || canCreate {
		t.Errorf("existing tag should not offer creation: canCreate=%v err=%v", canCreate, err)
	}
}

func TestMenuUnknownURL(t *testing.T) {
	ix, _ := newTestIndex(t)
	_, _, err := ix.Menu("https://photos.example/missing", "")
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestToggleAddAndRemove(t *testing.T) {
	ix, st := newTestIndex(t, &album.Record{ID: "1", URL: "u1"})

	outcome, err := ix.Toggle("u1", "travel", ActionAdd)
	if err != nil || outcome != ToggleApplied {
		t.Fatalf("add: outcome=%v err=%v", outcome, err)
	}
	rec, _ := st.Get("u1")
	if !rec.HasTag("travel") {
		t.Fatal("tag not added")
	}

	outcome, err = ix.Toggle("u1", "travel", ActionRemove)
	if err != nil || outcome != ToggleApplied {
		t.Fatalf("remove: outcome=%v err=%v", outcome, err)
	}
	if rec.HasTag("travel") {
		t.Fatal("tag not removed")
	}
}

func TestToggleIsIdempotent(t *testing.T) {
	ix, st := newTestIndex(t, &album.Record{ID: "1", URL: "u1", Tags: []string{"travel"}})

	outcome, err := ix.Toggle("u1", "travel", ActionAdd)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != ToggleAlreadyInState {
		t.Errorf("repeated add outcome = %v, want already-in-that-state", outcome)
	}
	rec, _ := st.Get("u1")
	if len(rec.Tags) != 1 {
		t.Errorf("tags duplicated: %v", rec.Tags)
	}

	if _, err := ix.Toggle("u1", "travel", ActionRemove); err != nil {
		t.Fatal(err)
	}
	outcome, err = ix.Toggle("u1", "travel", ActionRemove)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != ToggleAlreadyInState {
		t.Errorf("repeated remove outcome = %v, want already-in-that-state", outcome)
	}
}

func TestToggleValidation(t *testing.T) {
	ix, _ := newTestIndex(t, &album.Record{ID: "1", URL: "u1"})

	if _, err := ix.Toggle("u1", "  ", ActionAdd); !errors.Is(err, fault.ErrValidation) {
		t.Errorf("blank tag: err = %v, want ErrValidation", err)
	}
	if _, err := ix.Toggle("", "travel", ActionAdd); !errors.Is(err, fault.ErrValidation) {
		t.Errorf("blank url: err = %v, want ErrValidation", err)
	}
	if _, err := ix.Toggle("missing", "travel", ActionAdd); !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("unknown url: err = %v, want ErrNotFound", err)
	}
}

func TestParseAction(t *testing.T) {
	if a, err := ParseAction(" Add "); err != nil || a != ActionAdd {
		t.Errorf("ParseAction(Add) = (%v, %v)", a, err)
	}
	if a, err := ParseAction("remove"); err != nil || a != ActionRemove {
		t.Errorf("ParseAction(remove) = (%v, %v)", a, err)
	}
	if _, err := ParseAction("toggle"); !errors.Is(err, fault.ErrValidation) {
		t.Errorf("ParseAction(toggle) err = %v, want ErrValidation", err)
	}
}
