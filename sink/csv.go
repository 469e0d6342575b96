package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gridbrief/types"
)

// Columns fixes the CSV header order for the dataset. The nested location
// object is flattened into its three fields; list fields are joined with ";".
var Columns = []string{
	"date_utc", "headline", "summary_80w", "region", "country", "category",
	"subtopic", "capacity_MW", "storage_MWh", "project_stage",
	"tariff_or_price_local", "tariff_or_price_usd", "entities",
	"state_or_laender", "city", "grid_zone",
	"effective_date", "impact_score_1to5", "tags",
	"source_name", "source_url", "reliability", "notes",
}

// WriteCSV writes the ranked record set as one CSV row per record, in the
// order given.
func WriteCSV(path string, records []types.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.DateUTC, r.Headline, r.Summary80W, r.Region, r.Country, r.Category,
			r.Subtopic, strconv.Itoa(r.CapacityMW), strconv.Itoa(r.StorageMWh), r.ProjectStage,
			r.TariffOrPriceLocal, r.TariffOrPriceUSD, strings.Join(r.Entities, ";"),
			r.Location.StateOrLaender, r.Location.City, r.Location.GridZone,
			r.EffectiveDate, strconv.Itoa(r.ImpactScore), strings.Join(r.Tags, ";"),
			r.SourceName, r.SourceURL, r.Reliability, r.Notes,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
