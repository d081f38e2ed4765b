package dates

import "testing"

func TestNormalizeCanonicalPassesThrough(t *testing.T) {
	n := NewNormalizer(2024)

	got, ok := n.Normalize("2014-11-27")
	if !ok {
		t.Fatal("Normalize failed for canonical input")
	}
	if got != "2014-11-27" {
		t.Errorf("Normalize mismatch: got %q, want %q", got, "2014-11-27")
	}
}

func TestNormalizeDisplayFormWithYear(t *testing.T) {
	n := NewNormalizer(2024)

	got, ok := n.Normalize("Nov 27, 2014")
	if !ok {
		t.Fatal("Normalize failed for display input")
	}
	if got != "2014-11-27" {
		t.Errorf("Normalize mismatch: got %q, want %q", got, "2014-11-27")
	}
}

func TestNormalizeYearlessUsesReferenceYear(t *testing.T) {
	n := NewNormalizer(2021)

	got, ok := n.Normalize("Nov 27")
	if !ok {
		t.Fatal("Normalize failed for year-less input")
	}
	if got != "2021-11-27" {
		t.Errorf("Normalize mismatch: got %q, want %q", got, "2021-11-27")
	}
}

func TestNormalizeUnparseable(t *testing.T) {
	n := NewNormalizer(2024)

	for _, raw := range []string{"", "   ", "not a date", "27/11/2014"} {
		if got, ok := n.Normalize(raw); ok {
			t.Errorf("Normalize(%q) = %q, want failure", raw, got)
		}
	}
}

func TestValid(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31", "2024-02-29"}
	for _, s := range valid {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "2024-1-1", "2024-02-30", "2023-02-29", "Nov 27, 2014", "2024-13-01", "2024-00-10"}
	for _, s := range invalid {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}

func TestBuildAndSplitRange(t *testing.T) {
	r := BuildRange("2024-11-27", "2024-11-28")
	if r != "2024-11-27--2024-11-28" {
		t.Fatalf("BuildRange mismatch: got %q", r)
	}
	start, end := SplitRange(r)
	if start != "2024-11-27" || end != "2024-11-28" {
		t.Errorf("SplitRange mismatch: got (%q, %q)", start, end)
	}

	single := BuildRange("2024-11-27", "")
	if single != "2024-11-27" {
		t.Fatalf("BuildRange single mismatch: got %q", single)
	}
	start, end = SplitRange(single)
	if start != "2024-11-27" || end != "" {
		t.Errorf("SplitRange single mismatch: got (%q, %q)", start, end)
	}
}

func TestParseEditInput(t *testing.T) {
	start, end, ok := ParseEditInput("2025-11-10")
	if !ok || start != "2025-11-10" || end != "" {
		t.Errorf("single date: got (%q, %q, %v)", start, end, ok)
	}

	start, end, ok = ParseEditInput("2020-11-10--2025-11-10")
	if !ok || start != "2020-11-10" || end != "2025-11-10" {
		t.Errorf("range: got (%q, %q, %v)", start, end, ok)
	}

	for _, input := range []string{"", "2025-11-10--", "2025-11-10--2020-11-10", "Nov 10, 2025", "2025-11-10--2025-11-11--2025-11-12"} {
		if _, _, ok := ParseEditInput(input); ok {
			t.Errorf("ParseEditInput(%q) succeeded, want failure", input)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate("2024-10-30"); got != "Oct 30, 2024" {
		t.Errorf("DisplayDate mismatch: got %q", got)
	}
	// Unparseable input is passed through.
	if got := DisplayDate("garbage"); got != "garbage" {
		t.Errorf("DisplayDate passthrough mismatch: got %q", got)
	}
}

func TestDisplayRangeSameYearOmitsStartYear(t *testing.T) {
	if got := DisplayRange("2023-10-30", "2023-11-02"); got != "Oct 30 – Nov 02" {
		t.Errorf("DisplayRange mismatch: got %q", got)
	}
}

func TestDisplayRangeSpanningYears(t *testing.T) {
	if got := DisplayRange("2023-10-30", "2024-11-02"); got != "Oct 30, 2023 – Nov 02, 2024" {
		t.Errorf("DisplayRange mismatch: got %q", got)
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	n := NewNormalizer(2024)

	for _, canonical := range []string{"2014-11-27", "2024-02-29", "1999-01-01"} {
		display := DisplayDate(canonical)
		got, ok := n.Normalize(display)
		if !ok {
			t.Fatalf("Normalize(%q) failed", display)
		}
		if got != canonical {
			t.Errorf("round trip mismatch: %q -> %q -> %q", canonical, display, got)
		}
	}
}

func TestSortKey(t *testing.T) {
	n := NewNormalizer(2024)

	if key := n.SortKey("2024-03-01"); key != (Key{Year: 2024, Month: 3, Day: 1}) {
		t.Errorf("canonical key mismatch: got %+v", key)
	}
	if key := n.SortKey("Oct 30, 2022"); key != (Key{Year: 2022, Month: 10, Day: 30}) {
		t.Errorf("display key mismatch: got %+v", key)
	}
	if key := n.SortKey("Oct 30"); key != (Key{Year: 2024, Month: 10, Day: 30}) {
		t.Errorf("year-less key mismatch: got %+v", key)
	}
	if key := n.SortKey(""); !key.IsZero() {
		t.Errorf("empty input: got %+v, want zero key", key)
	}
	if key := n.SortKey("garbage"); !key.IsZero() {
		t.Errorf("unparseable input: got %+v, want zero key", key)
	}
}

func TestKeyOrdering(t *testing.T) {
	zero := Key{}
	older := Key{Year: 2023, Month: 1, Day: 1}
	newer := Key{Year: 2024, Month: 3, Day: 1}

	if !zero.Less(older) {
		t.Error("zero key should sort before real dates ascending")
	}
	if !older.Less(newer) {
		t.Error("2023-01-01 should sort before 2024-03-01")
	}
	if newer.Less(older) {
		t.Error("ordering is not antisymmetric")
	}
}

func TestYear(t *testing.T) {
	if year, ok := Year("2024-10-30"); !ok || year != 2024 {
		t.Errorf("canonical year: got (%d, %v)", year, ok)
	}
	if year, ok := Year("Oct 30, 2022"); !ok || year != 2022 {
		t.Errorf("display year: got (%d, %v)", year, ok)
	}
	// A date that never stated its year cannot support year filtering.
	if _, ok := Year("Oct 30"); ok {
		t.Error("year-less input should not report a year")
	}
	if _, ok := Year(""); ok {
		t.Error("empty input should not report a year")
	}
}
