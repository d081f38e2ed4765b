package library

import (
	"log/slog"
	"strings"

	"gpalbums/internal/config"
	"gpalbums/internal/dates"
	"gpalbums/internal/fault"
	"gpalbums/internal/ingest"
	"gpalbums/internal/logging"
	"gpalbums/internal/search"
	"gpalbums/internal/stats"
	"gpalbums/internal/store"
	"gpalbums/internal/tags"
)

// Service composes the record store with the reconciliation, query, and tag
// engines and exposes the boundary operations the CLI renders.
//
// A Service holds one store snapshot, loaded at Open. Mutating operations
// rewrite the collection before returning; operations that change nothing
// never write.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	norm   dates.Normalizer
	ingest *ingest.Engine
	search *search.Engine
	tags   *tags.Index
}

// Open loads the collection configured in cfg and wires the engines over it.
func Open(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	st, err := store.Open(cfg.DatabasePath(), cfg.LockPath(), logger)
	if err != nil {
		return nil, err
	}
	norm := dates.NewNormalizer(cfg.Dates.ReferenceYear)
	return &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "library"),
		store:  st,
		norm:   norm,
		ingest: ingest.NewEngine(st, norm, logger),
		search: search.NewEngine(st, norm, cfg.Display.TitleSuffix, logger),
		tags:   tags.NewIndex(st, logger),
	}, nil
}

// Store exposes the underlying snapshot, mainly for stats and tests.
func (s *Service) Store() *store.Store {
	return s.store
}

// Ingest dispatches a parsed scraper payload to the matching ingest mode
// and persists when anything changed.
func (s *Service) Ingest(p ingest.Payload) (ingest.Report, error) {
	switch p.Kind {
	case ingest.KindSingle:
		res, err := s.IngestSingle(p.Single)
		if err != nil {
			return ingest.Report{}, err
		}
		var report ingest.Report
		switch res.Outcome {
		case ingest.OutcomeCreated:
			report.CreatedIDs = []string{res.ID}
		case ingest.OutcomeUpdated:
			report.UpdatedIDs = []string{res.ID}
		default:
			report.UnchangedIDs = []string{res.ID}
		}
		return report, nil
	default:
		return s.IngestBatch(p.Albums)
	}
}

// IngestSingle merges one dated candidate and persists on change.
func (s *Service) IngestSingle(c ingest.Candidate) (ingest.Result, error) {
	res, err := s.ingest.IngestSingle(c)
	if err != nil {
		return ingest.Result{}, err
	}
	if res.Outcome != ingest.OutcomeUnchanged {
		if err := s.store.Save(); err != nil {
			return ingest.Result{}, err
		}
	}
	return res, nil
}

// IngestBatch merges scraped candidates and persists only when the run
// created or updated at least one record, so re-running an identical batch
// performs no write.
func (s *Service) IngestBatch(candidates []ingest.Candidate) (ingest.Report, error) {
	report := s.ingest.IngestBatch(candidates)
	if report.Changed() {
		if err := s.store.Save(); err != nil {
			return ingest.Report{}, err
		}
	}
	return report, nil
}

// Search runs a query over the snapshot.
func (s *Service) Search(rawQuery string, f search.Filters) []search.Match {
	return s.search.Search(rawQuery, f)
}

// ListTags returns all tags with counts, optionally substring-filtered.
func (s *Service) ListTags(filter string) []tags.Count {
	return s.tags.All(filter)
}

// TagMenu returns the tag management view for the album at url.
func (s *Service) TagMenu(url, filter string) ([]tags.MenuEntry, bool, error) {
	return s.tags.Menu(url, filter)
}

// ToggleTag applies a tag mutation and persists when it changed the record.
func (s *Service) ToggleTag(url, tag string, action tags.Action) (tags.ToggleOutcome, error) {
	outcome, err := s.tags.Toggle(url, tag, action)
	if err != nil {
		return outcome, err
	}
	if outcome == tags.ToggleApplied {
		if err := s.store.Save(); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// Stats buckets the collection by completeness.
func (s *Service) Stats() stats.Summary {
	return stats.Collect(s.store.Records())
}

// requireRecord resolves url or reports a not-found failure for operation.
func (s *Service) requireRecord(operation, url string) (*recordHandle, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fault.Wrap(fault.ErrValidation, "library", operation, "url is required", nil)
	}
	rec, ok := s.store.Get(url)
	if !ok {
		return nil, fault.Wrap(fault.ErrNotFound, "library", operation, "no album for url "+url, nil)
	}
	return &recordHandle{service: s, record: rec}, nil
}
