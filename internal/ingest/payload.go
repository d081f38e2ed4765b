package ingest

import (
	"encoding/json"

	"gpalbums/internal/fault"
)

// Kind is the closed set of payload shapes the scraper produces.
type Kind int

const (
	// KindSingle is one album with optional date information.
	KindSingle Kind = iota
	// KindBulk is a page scrape: many albums, titles and counts only.
	KindBulk
)

// Payload is a parsed scraper document, already classified by shape.
type Payload struct {
	Kind   Kind
	Single Candidate
	Albums []Candidate
}

type rawPayload struct {
	Type      string      `json:"type"`
	Error     string      `json:"error"`
	URL       string      `json:"url"`
	Title     string      `json:"title"`
	ItemCount *int        `json:"itemCount"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Albums    []Candidate `json:"albums"`
}

// ParsePayload classifies a raw scraper document. Unrecognized shapes fail
// with a format error before any mutation happens; a scraper-reported error
// object fails with a validation error carrying the scraper's message.
func ParsePayload(data []byte) (Payload, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return Payload{}, fault.Wrap(fault.ErrFormat, "ingest", "parse", "input is not a JSON object", err)
	}
	if raw.Error != "" {
		return Payload{}, fault.Wrap(fault.ErrValidation, "ingest", "parse", "scraper reported: "+raw.Error, nil)
	}
	switch raw.Type {
	case "single":
		return Payload{
			Kind: KindSingle,
			Single: Candidate{
				URL:       raw.URL,
				Title:     raw.Title,
				ItemCount: raw.ItemCount,
				StartDate: raw.StartDate,
				EndDate:   raw.EndDate,
			},
		}, nil
	case "bulk":
		return Payload{Kind: KindBulk, Albums: raw.Albums}, nil
	default:
		return Payload{}, fault.Wrap(fault.ErrFormat, "ingest", "parse", "unrecognized payload type "+formatKindDetail(raw.Type), nil)
	}
}

func formatKindDetail(kind string) string {
	if kind == "" {
		return "(none)"
	}
	return "\"" + kind + "\""
}
