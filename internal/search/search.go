// Package search filters and ranks stored albums against a structured
// query.
//
// A raw query is whitespace-tokenized; y:YYYY and y:YYYY-YYYY tokens become
// a year filter and the remaining tokens are free-text terms matched with
// AND semantics against the normalized title. Results sort by date
// descending with undated albums last, stable relative to collection order.
package search

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gpalbums/internal/album"
	"gpalbums/internal/dates"
	"gpalbums/internal/logging"
	"gpalbums/internal/store"
)

var (
	yearTokenPattern = regexp.MustCompile(`(?i)^y:(\d{4})(?:-(\d{4}))?$`)
	separatorPattern = regexp.MustCompile(`[-_/\\|]`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// YearSpan is a closed year interval requested by a query.
type YearSpan struct {
	Start int
	End   int
}

// Query is a parsed raw query: free-text terms plus an optional year filter.
type Query struct {
	Terms []string
	Year  *YearSpan
}

// ParseQuery tokenizes raw, extracting year-filter tokens. The remaining
// tokens are normalized free-text terms.
func ParseQuery(raw string) Query {
	var q Query
	for _, token := range strings.Fields(raw) {
		if m := yearTokenPattern.FindStringSubmatch(token); m != nil {
			start, _ := strconv.Atoi(m[1])
			end := start
			if m[2] != "" {
				end, _ = strconv.Atoi(m[2])
			}
			q.Year = &YearSpan{Start: start, End: end}
			continue
		}
		for _, term := range strings.Fields(NormalizeText(token)) {
			q.Terms = append(q.Terms, term)
		}
	}
	return q
}

// NormalizeText lowercases s and collapses separator characters and
// whitespace runs into single spaces.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = separatorPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// Filters restricts a search beyond the query text. All fields are
// optional and AND-combined.
type Filters struct {
	// IDs limits results to the given record IDs.
	IDs []string
	// Tag limits results to records carrying the tag.
	Tag string
}

// Match is one search hit, repackaged for display and downstream edit
// actions.
type Match struct {
	Record      *album.Record
	Title       string // display title, count appended when positive
	CleanTitle  string
	URL         string
	Tags        []string
	ItemCount   *int
	DateDisplay string // stored dateRange, as shown in subtitles
	EditRange   string // canonical range for the edit-date action
	Position    int    // 1-based rank after filtering and sorting
	Total       int

	key dates.Key
}

// Engine answers queries over a store snapshot.
type Engine struct {
	store       *store.Store
	norm        dates.Normalizer
	titleSuffix string
	printer     *message.Printer
	logger      *slog.Logger
}

// NewEngine returns an Engine over st. titleSuffix is stripped from display
// titles.
func NewEngine(st *store.Store, norm dates.Normalizer, titleSuffix string, logger *slog.Logger) *Engine {
	return &Engine{
		store:       st,
		norm:        norm,
		titleSuffix: titleSuffix,
		printer:     message.NewPrinter(language.English),
		logger:      logging.NewComponentLogger(logger, "search"),
	}
}

// Search returns all records matching rawQuery and filters, sorted and
// numbered.
func (e *Engine) Search(rawQuery string, f Filters) []Match {
	q := ParseQuery(rawQuery)

	var idSet map[string]struct{}
	if len(f.IDs) > 0 {
		idSet = make(map[string]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			if id = strings.TrimSpace(id); id != "" {
				idSet[id] = struct{}{}
			}
		}
	}

	var matches []Match
	for _, rec := range e.store.Records() {
		if idSet != nil {
			if _, ok := idSet[rec.ID]; !ok {
				continue
			}
		}
		if f.Tag != "" && !rec.HasTag(f.Tag) {
			continue
		}
		if !e.matchesYear(rec, q.Year) {
			continue
		}
		if !matchesTerms(rec.Title, q.Terms) {
			continue
		}
		matches = append(matches, e.buildMatch(rec))
	}

	// Undated records rank after all dated ones; among dated records most
	// recent first. Ties keep collection order.
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].key, matches[j].key
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		return b.Less(a)
	})

	total := len(matches)
	for i := range matches {
		matches[i].Position = i + 1
		matches[i].Total = total
	}

	e.logger.Debug("search complete",
		logging.String("query", rawQuery),
		logging.Int("matches", total))
	return matches
}

func matchesTerms(title string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	normalized := NormalizeText(title)
	for _, term := range terms {
		if !strings.Contains(normalized, term) {
			return false
		}
	}
	return true
}

// matchesYear applies the span-overlap rule: the album's [start, end] years
// must intersect the requested span. Albums without a parsable start date
// never match a year filter.
func (e *Engine) matchesYear(rec *album.Record, span *YearSpan) bool {
	if span == nil {
		return true
	}
	startYear, ok := dates.Year(rec.StartDate)
	if !ok {
		return false
	}
	endYear := startYear
	if rec.EndDate != "" {
		if year, ok := dates.Year(rec.EndDate); ok {
			endYear = year
		}
	}
	return startYear <= span.End && endYear >= span.Start
}

func (e *Engine) buildMatch(rec *album.Record) Match {
	clean := rec.CleanTitle(e.titleSuffix)
	title := clean
	if count := album.Count(rec.ItemCount); count > 0 {
		title = e.printer.Sprintf("%s (%d)", clean, count)
	}
	return Match{
		Record:      rec,
		Title:       title,
		CleanTitle:  clean,
		URL:         rec.URL,
		Tags:        rec.Tags,
		ItemCount:   rec.ItemCount,
		DateDisplay: rec.DateRange,
		EditRange:   e.editRange(rec),
		key:         e.norm.SortKey(rec.StartDate),
	}
}

// editRange rebuilds a canonical range from the stored dates, tolerating
// legacy display-format values.
func (e *Engine) editRange(rec *album.Record) string {
	start, ok := e.norm.Normalize(rec.StartDate)
	if !ok {
		return ""
	}
	if end, ok := e.norm.Normalize(rec.EndDate); ok {
		return dates.BuildRange(start, end)
	}
	return start
}

// FormatCount renders n with thousand separators for presentation.
func (e *Engine) FormatCount(n int) string {
	return e.printer.Sprintf("%d", n)
}
