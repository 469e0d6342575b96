package normalize

import (
	"strings"
	"time"

	"gridbrief/classify"
	"gridbrief/types"
)

// SummaryMaxLen caps the stored summary length in runes.
const SummaryMaxLen = 600

// Normalizer converts raw feed entries into records. It owns the
// official-source set and the clock used for the missing-timestamp fallback,
// so both can be substituted in tests.
type Normalizer struct {
	official map[string]struct{}
	now      func() time.Time
}

// Config holds normalizer construction options.
type Config struct {
	// OfficialSources lists source names whose records are tiered "official".
	OfficialSources []string
	// Now supplies the clock for the missing-timestamp fallback.
	// Defaults to time.Now.
	Now func() time.Time
}

// New creates a normalizer with the given official-source set and clock.
func New(cfg Config) *Normalizer {
	official := make(map[string]struct{}, len(cfg.OfficialSources))
	for _, name := range cfg.OfficialSources {
		official[name] = struct{}{}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Normalizer{official: official, now: now}
}

// Normalize produces exactly one record for the entry. Missing fields degrade
// to documented defaults; it never fails, however empty the entry is.
func (n *Normalizer) Normalize(sourceName string, e types.RawEntry) types.Record {
	title := strings.TrimSpace(e.Title)
	summary := strings.TrimSpace(e.Summary)
	dateUTC := n.entryDate(e)

	// All classifiers read the same combined text; the geography classifier
	// additionally sees the link.
	text := title + " " + summary

	region, country := classify.RegionCountry(text, e.Link)
	if country == "" && region == "Europe" {
		country = "EU"
	}

	reliability := "trade"
	if _, ok := n.official[sourceName]; ok {
		reliability = "official"
	}

	return types.Record{
		DateUTC:       dateUTC,
		Headline:      title,
		Summary80W:    truncate(collapseWhitespace(summary), SummaryMaxLen),
		Region:        region,
		Country:       country,
		Category:      classify.Category(text),
		ProjectStage:  "NA",
		Entities:      []string{},
		EffectiveDate: dateUTC,
		ImpactScore:   classify.Impact(text),
		Tags:          classify.Tags(text),
		SourceName:    sourceName,
		SourceURL:     e.Link,
		Reliability:   reliability,
	}
}

// entryDate converts the entry timestamp to a UTC calendar date. Only the
// year..second components are used and the result is treated as UTC no matter
// what zone the feed declared. Entries without a timestamp get the current
// UTC date.
func (n *Normalizer) entryDate(e types.RawEntry) string {
	t := n.now().UTC()
	if e.Published != nil {
		p := *e.Published
		t = time.Date(p.Year(), p.Month(), p.Day(), p.Hour(), p.Minute(), p.Second(), 0, time.UTC)
	}
	return t.Format("2006-01-02")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
