// Package dates normalizes the heterogeneous date strings found in scraped
// album metadata into the canonical YYYY-MM-DD form and back into human
// display forms.
//
// Accepted inputs are the canonical form itself, a display form with an
// explicit year ("Nov 27, 2014"), and a display form without a year
// ("Nov 27"). Year-less input is resolved against a reference year supplied
// at construction so the behavior is reproducible in tests.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RangeSeparator joins the two canonical dates of a closed interval.
const RangeSeparator = "--"

const (
	canonicalLayout   = "2006-01-02"
	displayLayout     = "Jan 2, 2006"
	displayOutLayout  = "Jan 02, 2006"
	monthDayLayout    = "Jan 02"
	rangeDisplayJoint = " – "
)

// Normalizer converts raw date strings into canonical form.
type Normalizer struct {
	referenceYear int
}

// NewNormalizer returns a Normalizer that resolves year-less dates against
// referenceYear. A non-positive referenceYear selects the current calendar
// year.
func NewNormalizer(referenceYear int) Normalizer {
	if referenceYear <= 0 {
		referenceYear = time.Now().Year()
	}
	return Normalizer{referenceYear: referenceYear}
}

// ReferenceYear reports the year used to resolve year-less input.
func (n Normalizer) ReferenceYear() int {
	return n.referenceYear
}

// Normalize parses raw into canonical YYYY-MM-DD form. The boolean is false
// when raw is empty or unparseable; callers must treat that as "no date
// available", never as a fatal error.
func (n Normalizer) Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if isCanonicalShape(raw) {
		return raw, true
	}
	if strings.Contains(raw, ",") {
		t, err := time.Parse(displayLayout, raw)
		if err != nil {
			return "", false
		}
		return t.Format(canonicalLayout), true
	}
	t, err := time.Parse(displayLayout, fmt.Sprintf("%s, %d", raw, n.referenceYear))
	if err != nil {
		return "", false
	}
	return t.Format(canonicalLayout), true
}

// NormalizeRange normalizes start and end and joins them with the range
// separator. End is optional; an empty or unparseable end yields a
// single-date range.
func (n Normalizer) NormalizeRange(start, end string) (string, bool) {
	s, ok := n.Normalize(start)
	if !ok {
		return "", false
	}
	if e, ok := n.Normalize(end); ok {
		return BuildRange(s, e), true
	}
	return s, true
}

// Valid reports whether s is a strict canonical YYYY-MM-DD date. Both the
// shape and the calendar validity of the fields are checked.
func Valid(s string) bool {
	if !isCanonicalShape(s) {
		return false
	}
	_, err := time.Parse(canonicalLayout, s)
	return err == nil
}

func isCanonicalShape(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BuildRange produces start alone, or start joined to end by the range
// separator when end is non-empty.
func BuildRange(start, end string) string {
	if end == "" {
		return start
	}
	return start + RangeSeparator + end
}

// SplitRange is the inverse of BuildRange. End is empty for single-date
// ranges.
func SplitRange(r string) (start, end string) {
	if idx := strings.Index(r, RangeSeparator); idx >= 0 {
		return r[:idx], r[idx+len(RangeSeparator):]
	}
	return r, ""
}

// ParseEditInput parses user-entered date input: a single canonical date or
// two canonical dates joined by the range separator. The boolean is false on
// malformed input, including a range whose start is after its end.
func ParseEditInput(input string) (start, end string, ok bool) {
	input = strings.TrimSpace(input)
	if strings.Contains(input, RangeSeparator) {
		parts := strings.Split(input, RangeSeparator)
		if len(parts) != 2 {
			return "", "", false
		}
		start, end = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if !Valid(start) || !Valid(end) {
			return "", "", false
		}
		// Lexicographic order is chronological for canonical dates.
		if start > end {
			return "", "", false
		}
		return start, end, true
	}
	if !Valid(input) {
		return "", "", false
	}
	return input, "", true
}

// DisplayDate converts a canonical date to its display form ("Nov 27, 2014").
// Unparseable input is returned unchanged.
func DisplayDate(canonical string) string {
	t, err := time.Parse(canonicalLayout, canonical)
	if err != nil {
		return canonical
	}
	return t.Format(displayOutLayout)
}

// DisplayRange converts a canonical date pair to its display form. Ranges
// within one year omit the year on the start side; ranges spanning years
// show it on both sides.
func DisplayRange(start, end string) string {
	s, errS := time.Parse(canonicalLayout, start)
	e, errE := time.Parse(canonicalLayout, end)
	if errS != nil || errE != nil {
		return start + rangeDisplayJoint + end
	}
	if s.Year() == e.Year() {
		return s.Format(monthDayLayout) + rangeDisplayJoint + e.Format(monthDayLayout)
	}
	return s.Format(displayOutLayout) + rangeDisplayJoint + e.Format(displayOutLayout)
}

// Key is a comparable (year, month, day) triple used for ordering. The zero
// Key marks a missing or unparseable date and sorts before all real dates in
// ascending order.
type Key struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether k is the missing-date sentinel.
func (k Key) IsZero() bool {
	return k == Key{}
}

// Less orders keys ascending; the zero key sorts first.
func (k Key) Less(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// SortKey derives an ordering key from any supported date representation.
// Unparseable or missing input yields the zero Key.
func (n Normalizer) SortKey(raw string) Key {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Key{}
	}
	if isCanonicalShape(raw) {
		year, _ := strconv.Atoi(raw[:4])
		month, _ := strconv.Atoi(raw[5:7])
		day, _ := strconv.Atoi(raw[8:10])
		return Key{Year: year, Month: month, Day: day}
	}
	canonical, ok := n.Normalize(raw)
	if !ok {
		return Key{}
	}
	return n.SortKey(canonical)
}

// Year extracts the year from a canonical date or a display form with an
// explicit year. Year-less display forms report false: a scraped date that
// never stated its year cannot support year filtering.
func Year(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if isCanonicalShape(raw) {
		year, err := strconv.Atoi(raw[:4])
		if err != nil {
			return 0, false
		}
		return year, true
	}
	if strings.Contains(raw, ",") {
		t, err := time.Parse(displayLayout, raw)
		if err != nil {
			return 0, false
		}
		return t.Year(), true
	}
	return 0, false
}
