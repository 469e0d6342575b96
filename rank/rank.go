package rank

import (
	"sort"

	"gridbrief/types"
)

// Rank orders records by date_utc descending, breaking date ties by impact
// score descending. The sort is stable, so records tied on both keys keep
// their incoming relative order. The input slice is not modified.
func Rank(records []types.Record) []types.Record {
	out := make([]types.Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateUTC != out[j].DateUTC {
			return out[i].DateUTC > out[j].DateUTC
		}
		return out[i].ImpactScore > out[j].ImpactScore
	})

	return out
}
