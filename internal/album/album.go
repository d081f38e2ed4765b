// Package album defines the persisted album record and its helpers.
//
// A record is keyed by URL. The ID is assigned once at creation and never
// changes; itemCount is an explicit optional so "absent" and "present and
// zero" remain distinguishable for the merge policy.
package album

import "strings"

// Record is the unit of storage: one scraped photo album.
type Record struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	ItemCount *int     `json:"itemCount,omitempty"`
	Tags      []string `json:"tags"`
	DateRange string   `json:"dateRange,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
}

// CleanTitle strips suffix from the record title when present. The scraper
// appends the page suffix (" - Google Photos") to every album title.
func (r *Record) CleanTitle(suffix string) string {
	if suffix != "" && strings.HasSuffix(r.Title, suffix) {
		return r.Title[:len(r.Title)-len(suffix)]
	}
	return r.Title
}

// HasTag reports whether tag is present on the record.
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends tag if absent and reports whether the record changed.
func (r *Record) AddTag(tag string) bool {
	if r.HasTag(tag) {
		return false
	}
	r.Tags = append(r.Tags, tag)
	return true
}

// RemoveTag removes tag if present and reports whether the record changed.
func (r *Record) RemoveTag(tag string) bool {
	for i, t := range r.Tags {
		if t == tag {
			r.Tags = append(r.Tags[:i], r.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// MissingItemCount reports whether the record has no usable item count.
// Zero and absent are equivalent absence states.
func (r *Record) MissingItemCount() bool {
	return r.ItemCount == nil || *r.ItemCount == 0
}

// MissingDate reports whether the record carries no date information.
func (r *Record) MissingDate() bool {
	return r.StartDate == "" && r.DateRange == ""
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	clone := *r
	if r.ItemCount != nil {
		count := *r.ItemCount
		clone.ItemCount = &count
	}
	clone.Tags = append([]string(nil), r.Tags...)
	return &clone
}

// Count dereferences an optional item count, with 0 for absent.
func Count(count *int) int {
	if count == nil {
		return 0
	}
	return *count
}

// CountOf boxes an item count value.
func CountOf(count int) *int {
	return &count
}
