package pipeline

import (
	"fmt"
	"testing"
	"time"

	"gridbrief/normalize"
	"gridbrief/sources"
	"gridbrief/types"
)

// fakeSource serves canned entries per feed URL and can fail selected feeds.
type fakeSource struct {
	entries map[string][]types.RawEntry
	failing map[string]bool
}

func (f *fakeSource) Fetch(feedURL string, maxCount int) ([]types.RawEntry, error) {
	if f.failing[feedURL] {
		return nil, fmt.Errorf("connection refused")
	}
	entries := f.entries[feedURL]
	if len(entries) > maxCount {
		entries = entries[:maxCount]
	}
	return entries, nil
}

func testNormalizer() *normalize.Normalizer {
	return normalize.New(normalize.Config{
		OfficialSources: []string{"Bundesnetzagentur"},
		Now: func() time.Time {
			return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	})
}

func ts(value string) *time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return &t
}

func TestRunIsolatesFetchFailures(t *testing.T) {
	registry := []sources.Source{
		{Name: "Broken Feed", URL: "https://broken.example/feed"},
		{Name: "PV-Tech", URL: "https://pv.example/feed"},
	}
	source := &fakeSource{
		entries: map[string][]types.RawEntry{
			"https://pv.example/feed": {
				{Title: "Solar record", Link: "https://pv.example/1", Published: ts("2024-05-30T08:00:00Z")},
			},
		},
		failing: map[string]bool{"https://broken.example/feed": true},
	}

	p := New(Config{Source: source, Normalizer: testNormalizer()})
	records := p.Run(registry)

	if len(records) != 1 {
		t.Fatalf("expected 1 record despite failing feed, got %d", len(records))
	}
	if records[0].SourceName != "PV-Tech" {
		t.Fatalf("unexpected source %q", records[0].SourceName)
	}
}

func TestRunDedupesAcrossSources(t *testing.T) {
	registry := []sources.Source{
		{Name: "PV-Tech", URL: "https://pv.example/feed"},
		{Name: "Energy Storage News", URL: "https://esn.example/feed"},
	}
	shared := types.RawEntry{
		Title:     "Gigawatt factory announced",
		Link:      "https://pv.example/story",
		Published: ts("2024-05-30T08:00:00Z"),
	}
	source := &fakeSource{
		entries: map[string][]types.RawEntry{
			"https://pv.example/feed":  {shared},
			"https://esn.example/feed": {shared},
		},
	}

	p := New(Config{Source: source, Normalizer: testNormalizer()})
	records := p.Run(registry)

	if len(records) != 1 {
		t.Fatalf("expected shared story collapsed to 1 record, got %d", len(records))
	}
	// Sources are processed in registry order, so the first source wins.
	if records[0].SourceName != "PV-Tech" {
		t.Fatalf("expected first-seen source PV-Tech, got %q", records[0].SourceName)
	}
}

func TestRunRanksCombinedSet(t *testing.T) {
	registry := []sources.Source{
		{Name: "PV-Tech", URL: "https://pv.example/feed"},
	}
	source := &fakeSource{
		entries: map[string][]types.RawEntry{
			"https://pv.example/feed": {
				{Title: "Minor update", Link: "https://pv.example/1", Published: ts("2024-05-29T08:00:00Z")},
				{Title: "1000 MW auction result", Link: "https://pv.example/2", Published: ts("2024-05-30T08:00:00Z")},
				{Title: "Small note", Link: "https://pv.example/3", Published: ts("2024-05-30T09:00:00Z")},
			},
		},
	}

	p := New(Config{Source: source, Normalizer: testNormalizer()})
	records := p.Run(registry)

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// 2024-05-30 impact 5 first, then 2024-05-30 impact 3, then 2024-05-29.
	if records[0].Headline != "1000 MW auction result" {
		t.Fatalf("expected high-impact record first, got %q", records[0].Headline)
	}
	if records[1].Headline != "Small note" {
		t.Fatalf("expected same-day low-impact record second, got %q", records[1].Headline)
	}
	if records[2].Headline != "Minor update" {
		t.Fatalf("expected older record last, got %q", records[2].Headline)
	}
}

func TestRunRespectsMaxPerFeed(t *testing.T) {
	registry := []sources.Source{
		{Name: "PV-Tech", URL: "https://pv.example/feed"},
	}
	var entries []types.RawEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, types.RawEntry{
			Title:     fmt.Sprintf("Story %d", i),
			Link:      fmt.Sprintf("https://pv.example/%d", i),
			Published: ts("2024-05-30T08:00:00Z"),
		})
	}
	source := &fakeSource{entries: map[string][]types.RawEntry{"https://pv.example/feed": entries}}

	p := New(Config{Source: source, Normalizer: testNormalizer(), MaxPerFeed: 4})
	records := p.Run(registry)

	if len(records) != 4 {
		t.Fatalf("expected 4 records with MaxPerFeed=4, got %d", len(records))
	}
}
