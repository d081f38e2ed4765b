// Package tags derives the tag view from the album collection and applies
// tag mutations.
//
// Counts are rebuilt on demand. Listing order is count descending, then tag
// ascending case-insensitively; the same tie-break applies to the tag menu
// so both views stay consistent.
package tags

import (
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gpalbums/internal/fault"
	"gpalbums/internal/logging"
	"gpalbums/internal/store"
)

// Count pairs a tag with the number of albums carrying it.
type Count struct {
	Tag    string `json:"tag"`
	Albums int    `json:"albums"`
}

// Action is the closed set of tag mutations.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
)

// String returns the action verb.
func (a Action) String() string {
	if a == ActionRemove {
		return "remove"
	}
	return "add"
}

// ParseAction maps the wire verbs onto the closed Action set.
func ParseAction(raw string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "add":
		return ActionAdd, nil
	case "remove":
		return ActionRemove, nil
	default:
		return ActionAdd, fault.Wrap(fault.ErrValidation, "tags", "parse", "action must be add or remove, got "+strings.TrimSpace(raw), nil)
	}
}

// ToggleOutcome classifies a toggle attempt.
type ToggleOutcome int

const (
	// ToggleApplied means the record changed and a rewrite is due.
	ToggleApplied ToggleOutcome = iota
	// ToggleAlreadyInState means the record already satisfied the request.
	ToggleAlreadyInState
)

// String returns the outcome label.
func (o ToggleOutcome) String() string {
	if o == ToggleAlreadyInState {
		return "already-in-that-state"
	}
	return "applied"
}

// MenuEntry is one row of the per-album tag management view.
type MenuEntry struct {
	Tag     string `json:"tag"`
	Albums  int    `json:"albums"`
	Present bool   `json:"present"` // whether the target album carries the tag
}

// Index aggregates tag counts over a store snapshot.
type Index struct {
	store  *store.Store
	logger *slog.Logger
}

// NewIndex returns an Index over st.
func NewIndex(st *store.Store, logger *slog.Logger) *Index {
	return &Index{
		store:  st,
		logger: logging.NewComponentLogger(logger, "tags"),
	}
}

// All returns every tag with its album count, optionally filtered by a
// case-insensitive substring. Order: count descending, then tag ascending
// case-insensitively.
func (ix *Index) All(filter string) []Count {
	counts := make(map[string]int)
	for _, rec := range ix.store.Records() {
		for _, tag := range rec.Tags {
			counts[tag]++
		}
	}

	needle := strings.ToLower(strings.TrimSpace(filter))
	result := make([]Count, 0, len(counts))
	for tag, n := range counts {
		if needle != "" && !strings.Contains(strings.ToLower(tag), needle) {
			continue
		}
		result = append(result, Count{Tag: tag, Albums: n})
	}
	sortCounts(result)
	return result
}

// Menu builds the tag management view for the album at url: every known tag
// with its count and whether the album already carries it, filtered like
// All. CanCreate reports whether filter names a tag that does not exist yet.
func (ix *Index) Menu(url, filter string) (entries []MenuEntry, canCreate bool, err error) {
	rec, ok := ix.store.Get(url)
	if !ok {
		return nil, false, fault.Wrap(fault.ErrNotFound, "tags", "menu", "no album for url "+url, nil)
	}

	all := ix.All(filter)
	entries = make([]MenuEntry, 0, len(all))
	for _, c := range all {
		entries = append(entries, MenuEntry{Tag: c.Tag, Albums: c.Albums, Present: rec.HasTag(c.Tag)})
	}

	needle := strings.ToLower(strings.TrimSpace(filter))
	if needle != "" {
		canCreate = true
		for _, c := range ix.All("") {
			if strings.ToLower(c.Tag) == needle {
				canCreate = false
				break
			}
		}
	}
	return entries, canCreate, nil
}

// Toggle applies action for tag on the album at url. Both directions are
// idempotent: repeating a toggle reports ToggleAlreadyInState and leaves
// the record untouched.
func (ix *Index) Toggle(url, tag string, action Action) (ToggleOutcome, error) {
	tag = strings.TrimSpace(tag)
	if url == "" || tag == "" {
		return ToggleAlreadyInState, fault.Wrap(fault.ErrValidation, "tags", "toggle", "url and tag are required", nil)
	}
	rec, ok := ix.store.Get(url)
	if !ok {
		return ToggleAlreadyInState, fault.Wrap(fault.ErrNotFound, "tags", "toggle", "no album for url "+url, nil)
	}

	var changed bool
	if action == ActionAdd {
		changed = rec.AddTag(tag)
	} else {
		changed = rec.RemoveTag(tag)
	}

	outcome := ToggleAlreadyInState
	if changed {
		outcome = ToggleApplied
	}
	ix.logger.Debug("tag toggled",
		logging.String("url", url),
		logging.String("tag", tag),
		logging.String("action", action.String()),
		logging.String("outcome", outcome.String()))
	return outcome, nil
}

func sortCounts(counts []Count) {
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Albums != counts[j].Albums {
			return counts[i].Albums > counts[j].Albums
		}
		return collator.CompareString(counts[i].Tag, counts[j].Tag) < 0
	})
}
