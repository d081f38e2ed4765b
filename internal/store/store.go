package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"gpalbums/internal/album"
	"gpalbums/internal/fault"
	"gpalbums/internal/logging"
)

// maxLineBytes bounds a single record line; scraped titles and tag sets stay
// far below this.
const maxLineBytes = 1 << 20

// Store owns the on-disk album collection for the duration of one
// invocation. Records keep file order; new records append at the end.
type Store struct {
	path     string
	lock     *flock.Flock
	logger   *slog.Logger
	records  []*album.Record
	byURL    map[string]*album.Record
	assigned int
}

// Open loads the collection at path into memory. A missing file yields an
// empty store. Lines that fail to parse are skipped with a warning; the
// rest of the collection is preserved.
func Open(path, lockPath string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		lock:   flock.New(lockPath),
		logger: logging.NewComponentLogger(logger, "store"),
		byURL:  make(map[string]*album.Record),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the records in collection order. The slice is shared;
// callers mutate records through it and then call Save.
func (s *Store) Records() []*album.Record {
	return s.records
}

// Get returns the record for url.
func (s *Store) Get(url string) (*album.Record, bool) {
	rec, ok := s.byURL[url]
	return rec, ok
}

// Add appends a new record. The URL must not already be present.
func (s *Store) Add(rec *album.Record) error {
	if strings.TrimSpace(rec.URL) == "" {
		return fault.Wrap(fault.ErrValidation, "store", "add", "record has no url", nil)
	}
	if _, exists := s.byURL[rec.URL]; exists {
		return fault.Wrap(fault.ErrValidation, "store", "add", "duplicate url "+rec.URL, nil)
	}
	s.records = append(s.records, rec)
	s.byURL[rec.URL] = rec
	return nil
}

// Remove deletes the record for url, returning it when found.
func (s *Store) Remove(url string) (*album.Record, bool) {
	rec, ok := s.byURL[url]
	if !ok {
		return nil, false
	}
	delete(s.byURL, url)
	for i, candidate := range s.records {
		if candidate == rec {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	return rec, true
}

// Save rewrites the whole collection atomically: the replacement content is
// fully built in memory, written to a temp file, and renamed over the
// original while holding the collection lock. Readers never observe a
// partial write.
func (s *Store) Save() error {
	var buf bytes.Buffer
	for _, rec := range s.records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fault.Wrap(fault.ErrPersistence, "store", "save", "encode record "+rec.URL, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fault.Wrap(fault.ErrPersistence, "store", "save", "create data directory", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fault.Wrap(fault.ErrPersistence, "store", "save", "acquire collection lock", err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("release collection lock", logging.Error(err))
		}
	}()

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return fault.Wrap(fault.ErrPersistence, "store", "save", "write temp file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fault.Wrap(fault.ErrPersistence, "store", "save", "replace collection file", err)
	}

	s.logger.Debug("collection saved",
		logging.Int("record_count", len(s.records)),
		logging.String("path", s.path))
	return nil
}

func (s *Store) load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fault.Wrap(fault.ErrPersistence, "store", "load", "open collection file", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec album.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			skipped++
			s.logger.Warn("skipping unparseable record line",
				logging.Int("line", lineNo),
				logging.Error(err))
			continue
		}
		if strings.TrimSpace(rec.URL) == "" {
			skipped++
			s.logger.Warn("skipping record without url", logging.Int("line", lineNo))
			continue
		}
		if rec.ID == "" {
			// Legacy files predate record IDs.
			rec.ID = uuid.NewString()
			s.assigned++
		}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		if existing, ok := s.byURL[rec.URL]; ok {
			s.logger.Warn("duplicate url in collection, keeping later record",
				logging.String("url", rec.URL))
			*existing = rec
			continue
		}
		copied := rec
		s.records = append(s.records, &copied)
		s.byURL[copied.URL] = &copied
	}
	if err := scanner.Err(); err != nil {
		return fault.Wrap(fault.ErrPersistence, "store", "load", "read collection file", err)
	}

	s.logger.Debug("collection loaded",
		logging.Int("record_count", len(s.records)),
		logging.Int("skipped_lines", skipped),
		logging.Int("assigned_ids", s.assigned))
	return nil
}

// AssignedIDs reports how many legacy records received an ID during load.
// A non-zero value means the next save upgrades the file in place.
func (s *Store) AssignedIDs() int {
	return s.assigned
}
