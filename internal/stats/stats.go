// Package stats computes completeness buckets over the album collection.
//
// Every bucket carries the matching record IDs so the caller can feed a
// bucket straight into the search engine's ID filter.
package stats

import "gpalbums/internal/album"

// Summary partitions the collection by completeness and tagging.
// Complete and Incomplete partition All; MissingBoth is the intersection of
// MissingCount and MissingDate.
type Summary struct {
	All          []string `json:"all"`
	Complete     []string `json:"complete"`
	Incomplete   []string `json:"incomplete"`
	MissingCount []string `json:"missingCount"`
	MissingDate  []string `json:"missingDate"`
	MissingBoth  []string `json:"missingBoth"`
	Tagged       []string `json:"tagged"`
	Untagged     []string `json:"untagged"`
}

// Collect buckets records by ID. Records without an ID are ignored; the
// store assigns IDs during load, so this only guards direct callers.
func Collect(records []*album.Record) Summary {
	var s Summary
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		s.All = append(s.All, rec.ID)

		missingCount := rec.MissingItemCount()
		missingDate := rec.MissingDate()
		switch {
		case missingCount && missingDate:
			s.MissingBoth = append(s.MissingBoth, rec.ID)
			s.MissingCount = append(s.MissingCount, rec.ID)
			s.MissingDate = append(s.MissingDate, rec.ID)
			s.Incomplete = append(s.Incomplete, rec.ID)
		case missingCount:
			s.MissingCount = append(s.MissingCount, rec.ID)
			s.Incomplete = append(s.Incomplete, rec.ID)
		case missingDate:
			s.MissingDate = append(s.MissingDate, rec.ID)
			s.Incomplete = append(s.Incomplete, rec.ID)
		default:
			s.Complete = append(s.Complete, rec.ID)
		}

		if len(rec.Tags) > 0 {
			s.Tagged = append(s.Tagged, rec.ID)
		} else {
			s.Untagged = append(s.Untagged, rec.ID)
		}
	}
	return s
}
