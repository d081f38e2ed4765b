// Package ingest reconciles scraped album candidates with the stored
// collection.
//
// The merge rule protects user edits: titles are never replaced once a
// record exists, item counts only fill an absent or zero value, and dates
// are rewritten only when the normalized value actually differs from the
// normalized existing one, so pure format drift never counts as a change.
package ingest

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"gpalbums/internal/album"
	"gpalbums/internal/dates"
	"gpalbums/internal/fault"
	"gpalbums/internal/logging"
	"gpalbums/internal/store"
)

// Candidate is an incoming album proposed for ingestion.
type Candidate struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	ItemCount *int   `json:"itemCount,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Outcome classifies what a candidate did to the store.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeUpdated
	OutcomeCreated
)

// String returns the outcome label used in reports and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Result reports the final record ID of one candidate and its outcome.
type Result struct {
	ID      string  `json:"id"`
	Outcome Outcome `json:"outcome"`
}

// Report aggregates outcomes across a batch.
type Report struct {
	CreatedIDs   []string `json:"createdIds"`
	UpdatedIDs   []string `json:"updatedIds"`
	UnchangedIDs []string `json:"unchangedIds"`
}

// Changed reports whether the run mutated the store and a rewrite is due.
func (r Report) Changed() bool {
	return len(r.CreatedIDs) > 0 || len(r.UpdatedIDs) > 0
}

func (r *Report) add(res Result) {
	switch res.Outcome {
	case OutcomeCreated:
		r.CreatedIDs = append(r.CreatedIDs, res.ID)
	case OutcomeUpdated:
		r.UpdatedIDs = append(r.UpdatedIDs, res.ID)
	default:
		r.UnchangedIDs = append(r.UnchangedIDs, res.ID)
	}
}

// Engine merges candidates into a store snapshot. It never saves; the
// caller persists when a run reports changes.
type Engine struct {
	store  *store.Store
	norm   dates.Normalizer
	logger *slog.Logger
}

// NewEngine returns an Engine bound to st.
func NewEngine(st *store.Store, norm dates.Normalizer, logger *slog.Logger) *Engine {
	return &Engine{
		store:  st,
		norm:   norm,
		logger: logging.NewComponentLogger(logger, "ingest"),
	}
}

// IngestSingle merges one candidate, dates included. An empty URL fails the
// call: a single-candidate ingest has nothing else to process.
func (e *Engine) IngestSingle(c Candidate) (Result, error) {
	if strings.TrimSpace(c.URL) == "" {
		return Result{}, fault.Wrap(fault.ErrValidation, "ingest", "single", "candidate has no url", nil)
	}
	res := e.merge(c, true)
	e.logger.Debug("single candidate merged",
		logging.String("url", c.URL),
		logging.String("outcome", res.Outcome.String()))
	return res, nil
}

// IngestBatch merges a sequence of title/itemCount candidates. Candidates
// without a URL are skipped silently and do not appear in the report.
func (e *Engine) IngestBatch(candidates []Candidate) Report {
	var report Report
	skipped := 0
	for _, c := range candidates {
		if strings.TrimSpace(c.URL) == "" {
			skipped++
			continue
		}
		report.add(e.merge(c, false))
	}
	e.logger.Debug("batch merged",
		logging.Int("created", len(report.CreatedIDs)),
		logging.Int("updated", len(report.UpdatedIDs)),
		logging.Int("unchanged", len(report.UnchangedIDs)),
		logging.Int("skipped", skipped))
	return report
}

func (e *Engine) merge(c Candidate, withDates bool) Result {
	existing, found := e.store.Get(c.URL)
	if !found {
		return Result{ID: e.create(c, withDates), Outcome: OutcomeCreated}
	}

	updated := false
	if e.mergeItemCount(existing, c.ItemCount) {
		updated = true
	}
	if withDates && e.mergeDates(existing, c) {
		updated = true
	}

	if updated {
		return Result{ID: existing.ID, Outcome: OutcomeUpdated}
	}
	return Result{ID: existing.ID, Outcome: OutcomeUnchanged}
}

func (e *Engine) create(c Candidate, withDates bool) string {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = "Untitled Album"
	}
	rec := &album.Record{
		ID:    uuid.NewString(),
		URL:   c.URL,
		Title: title,
		Tags:  []string{},
	}
	if c.ItemCount != nil {
		rec.ItemCount = album.CountOf(*c.ItemCount)
	}
	if withDates {
		if start, ok := e.norm.Normalize(c.StartDate); ok {
			rec.StartDate = start
			if end, ok := e.norm.Normalize(c.EndDate); ok {
				rec.EndDate = end
			}
			rec.DateRange = dates.BuildRange(rec.StartDate, rec.EndDate)
		}
	}
	// Add cannot fail here: merge only creates when the URL is absent.
	_ = e.store.Add(rec)
	return rec.ID
}

// mergeItemCount fills the existing count only when it is absent or zero
// and the candidate supplies a different value. A present non-zero count is
// a user correction and stays untouched.
func (e *Engine) mergeItemCount(existing *album.Record, candidate *int) bool {
	if candidate == nil {
		return false
	}
	if !existing.MissingItemCount() {
		return false
	}
	if existing.ItemCount != nil && *existing.ItemCount == *candidate {
		return false
	}
	existing.ItemCount = album.CountOf(*candidate)
	return true
}

// mergeDates rewrites the date fields only when the candidate carries a
// normalized date that differs from the re-normalized existing value.
func (e *Engine) mergeDates(existing *album.Record, c Candidate) bool {
	start, ok := e.norm.Normalize(c.StartDate)
	if !ok {
		return false
	}
	end, _ := e.norm.Normalize(c.EndDate)
	newRange := dates.BuildRange(start, end)

	changed := false
	if existingRange, ok := e.normalizedExistingRange(existing); !ok || existingRange != newRange {
		existing.DateRange = newRange
		changed = true
	}
	if existingStart, ok := e.norm.Normalize(existing.StartDate); !ok || existingStart != start {
		existing.StartDate = start
		changed = true
	}
	if end != "" {
		if existingEnd, ok := e.norm.Normalize(existing.EndDate); !ok || existingEnd != end {
			existing.EndDate = end
			changed = true
		}
	}
	return changed
}

func (e *Engine) normalizedExistingRange(existing *album.Record) (string, bool) {
	start, ok := e.norm.Normalize(existing.StartDate)
	if !ok {
		return "", false
	}
	if end, ok := e.norm.Normalize(existing.EndDate); ok {
		return dates.BuildRange(start, end), true
	}
	return start, true
}
