package ingest

import (
	"errors"
	"testing"

	"gpalbums/internal/album"
	"gpalbums/internal/fault"
)

func TestParsePayloadSingle(t *testing.T) {
	data := []byte(`{
		"type": "single",
		"url": "https://photos.example/a",
		"title": "Trip",
		"itemCount": 5,
		"startDate": "Mar 1, 2023",
		"endDate": "Mar 3, 2023"
	}`)

	p, err := ParsePayload(data)
	if err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if p.Kind != KindSingle {
		t.Errorf("kind = %v, want KindSingle", p.Kind)
	}
	c := p.Single
	if c.URL != "https://photos.example/a" || c.Title != "Trip" {
		t.Errorf("candidate mismatch: %+v", c)
	}
	if album.Count(c.ItemCount) != 5 {
		t.Errorf("itemCount = %d, want 5", album.Count(c.ItemCount))
	}
	if c.StartDate != "Mar 1, 2023" || c.EndDate != "Mar 3, 2023" {
		t.Errorf("dates mismatch: %+v", c)
	}
}

func TestParsePayloadBulk(t *testing.T) {
	data := []byte(`{
		"type": "bulk",
		"albums": [
			{"url": "https://photos.example/a", "title": "One", "itemCount": 3},
			{"url": "https://photos.example/b", "title": "Two"}
		]
	}`)

	p, err := ParsePayload(data)
	if err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if p.Kind != KindBulk {
		t.Errorf("kind = %v, want KindBulk", p.Kind)
	}
	if len(p.Albums) != 2 {
		t.Fatalf("albums = %d, want 2", len(p.Albums))
	}
	if p.Albums[0].Title != "One" || album.Count(p.Albums[0].ItemCount) != 3 {
		t.Errorf("first album mismatch: %+v", p.Albums[0])
	}
	if p.Albums[1].ItemCount != nil {
		t.Error("absent itemCount should stay nil")
	}
}

func TestParsePayloadScraperError(t *testing.T) {
	_, err := ParsePayload([]byte(`{"error": "page did not load"}`))
	if !errors.Is(err, fault.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestParsePayloadBadJSON(t *testing.T) {
	_, err := ParsePayload([]byte(`{"type": "single"`))
	if !errors.Is(err, fault.ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}

func TestParsePayloadUnknownType(t *testing.T) {
	for _, data := range []string{
		`{"type": "mystery"}`,
		`{"url": "https://photos.example/a"}`,
	} {
		_, err := ParsePayload([]byte(data))
		if !errors.Is(err, fault.ErrFormat) {
			t.Errorf("ParsePayload(%s) err = %v, want ErrFormat", data, err)
		}
	}
}
