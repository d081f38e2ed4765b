package library

import (
	"strings"

	"gpalbums/internal/album"
	"gpalbums/internal/dates"
	"gpalbums/internal/fault"
	"gpalbums/internal/logging"
)

// recordHandle pairs a resolved record with the service that owns it.
type recordHandle struct {
	service *Service
	record  *album.Record
}

// TitleChange reports an editTitle result.
type TitleChange struct {
	OldTitle string `json:"oldTitle"`
	NewTitle string `json:"newTitle"`
}

// CountChange reports an editItemCount result. OldCount is nil when the
// record had no count.
type CountChange struct {
	Title    string `json:"title"`
	OldCount *int   `json:"oldCount"`
	NewCount int    `json:"newCount"`
}

// DateChange reports an editDate result.
type DateChange struct {
	Title          string `json:"title"`
	CanonicalRange string `json:"canonicalRange"`
	Display        string `json:"display"`
}

// EditTitle unconditionally replaces the title of the album at url. Unlike
// reconciliation, direct edits always win.
func (s *Service) EditTitle(url, newTitle string) (TitleChange, error) {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return TitleChange{}, fault.Wrap(fault.ErrValidation, "library", "edit-title", "title must not be empty", nil)
	}
	handle, err := s.requireRecord("edit-title", url)
	if err != nil {
		return TitleChange{}, err
	}

	change := TitleChange{OldTitle: handle.record.Title, NewTitle: newTitle}
	handle.record.Title = newTitle
	if err := s.store.Save(); err != nil {
		return TitleChange{}, err
	}
	s.logger.Info("title updated",
		logging.String("url", handle.record.URL),
		logging.String("title", newTitle))
	return change, nil
}

// EditItemCount unconditionally replaces the item count of the album at url.
func (s *Service) EditItemCount(url string, newCount int) (CountChange, error) {
	if newCount < 0 {
		return CountChange{}, fault.Wrap(fault.ErrValidation, "library", "edit-count", "item count must not be negative", nil)
	}
	handle, err := s.requireRecord("edit-count", url)
	if err != nil {
		return CountChange{}, err
	}

	change := CountChange{
		Title:    handle.record.CleanTitle(s.cfg.Display.TitleSuffix),
		OldCount: handle.record.ItemCount,
		NewCount: newCount,
	}
	handle.record.ItemCount = album.CountOf(newCount)
	if err := s.store.Save(); err != nil {
		return CountChange{}, err
	}
	s.logger.Info("item count updated",
		logging.String("url", handle.record.URL),
		logging.Int("item_count", newCount))
	return change, nil
}

// EditDate replaces the date fields of the album at url from user input: a
// canonical date or a canonical range. Switching a range album to a single
// date clears the end date so dateRange stays derivable from the parts.
func (s *Service) EditDate(url, input string) (DateChange, error) {
	start, end, ok := dates.ParseEditInput(input)
	if !ok {
		return DateChange{}, fault.Wrap(fault.ErrValidation, "library", "edit-date",
			"date must be yyyy-mm-dd or yyyy-mm-dd--yyyy-mm-dd with start before end", nil)
	}
	handle, err := s.requireRecord("edit-date", url)
	if err != nil {
		return DateChange{}, err
	}

	rec := handle.record
	rec.StartDate = start
	rec.EndDate = end
	rec.DateRange = dates.BuildRange(start, end)
	if err := s.store.Save(); err != nil {
		return DateChange{}, err
	}

	display := dates.DisplayDate(start)
	if end != "" {
		display = dates.DisplayRange(start, end)
	}
	s.logger.Info("date updated",
		logging.String("url", rec.URL),
		logging.String("date_range", rec.DateRange))
	return DateChange{
		Title:          rec.CleanTitle(s.cfg.Display.TitleSuffix),
		CanonicalRange: rec.DateRange,
		Display:        display,
	}, nil
}

// DeleteAlbum removes the album at url and returns the removed record.
// Repeating the call reports not-found.
func (s *Service) DeleteAlbum(url string) (*album.Record, error) {
	handle, err := s.requireRecord("delete", url)
	if err != nil {
		return nil, err
	}
	removed, _ := s.store.Remove(handle.record.URL)
	if err := s.store.Save(); err != nil {
		return nil, err
	}
	s.logger.Info("album deleted",
		logging.String("url", removed.URL),
		logging.String("title", removed.Title))
	return removed, nil
}
