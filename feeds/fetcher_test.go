package feeds

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Germany awards 500 MW solar auction</title>
      <description>Bundesnetzagentur confirms results</description>
      <link>https://example.com/1</link>
      <pubDate>Thu, 30 May 2024 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Module prices continue to slide</title>
      <description>Analysts expect further drops</description>
      <link>https://example.com/2</link>
    </item>
    <item>
      <title>Third story</title>
      <link>https://example.com/3</link>
    </item>
  </channel>
</rss>`

func TestFetchMapsFeedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	entries, err := NewFeedFetcher().Fetch(srv.URL, 10)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Title != "Germany awards 500 MW solar auction" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if first.Summary != "Bundesnetzagentur confirms results" {
		t.Fatalf("unexpected summary %q", first.Summary)
	}
	if first.Link != "https://example.com/1" {
		t.Fatalf("unexpected link %q", first.Link)
	}
	if first.Published == nil {
		t.Fatal("expected published timestamp")
	}
	if got := first.Published.UTC().Format("2006-01-02"); got != "2024-05-30" {
		t.Fatalf("unexpected published date %q", got)
	}

	if entries[2].Published != nil {
		t.Fatal("expected nil timestamp for undated item")
	}
}

func TestFetchCapsEntryCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	entries, err := NewFeedFetcher().Fetch(srv.URL, 2)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected cap of 2 entries, got %d", len(entries))
	}
}

func TestFetchReturnsErrorForUnreachableFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewFeedFetcher().Fetch(srv.URL, 10); err == nil {
		t.Fatal("expected error for failing feed")
	}
}
