package types

import "time"

// RawEntry is one item as it arrives from a feed. Every field is optional;
// the normalizer fills in defaults for whatever is missing.
type RawEntry struct {
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published,omitempty"`
}

// Location holds the geographic placement slots reserved for future
// enrichment. The collector never populates them.
type Location struct {
	StateOrLaender string `json:"state_or_laender"`
	City           string `json:"city"`
	GridZone       string `json:"grid_zone"`
}

// Record is the normalized, classified form of one feed entry. A record is
// derived from exactly one entry and one registry source, and is immutable
// after normalization apart from its position in the final ordering.
type Record struct {
	DateUTC            string   `json:"date_utc"`
	Headline           string   `json:"headline"`
	Summary80W         string   `json:"summary_80w"`
	Region             string   `json:"region"`
	Country            string   `json:"country"`
	Category           string   `json:"category"`
	Subtopic           string   `json:"subtopic"`
	CapacityMW         int      `json:"capacity_MW"`
	StorageMWh         int      `json:"storage_MWh"`
	ProjectStage       string   `json:"project_stage"`
	TariffOrPriceLocal string   `json:"tariff_or_price_local"`
	TariffOrPriceUSD   string   `json:"tariff_or_price_usd"`
	Entities           []string `json:"entities"`
	Location           Location `json:"location"`
	EffectiveDate      string   `json:"effective_date"`
	ImpactScore        int      `json:"impact_score_1to5"`
	Tags               []string `json:"tags"`
	SourceName         string   `json:"source_name"`
	SourceURL          string   `json:"source_url"`
	Reliability        string   `json:"reliability"`
	Notes              string   `json:"notes"`
}
