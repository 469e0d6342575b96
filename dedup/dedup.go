package dedup

import "gridbrief/types"

type key struct {
	headline  string
	sourceURL string
}

// Dedupe drops records whose (headline, source_url) pair was already seen,
// keeping the first occurrence and the relative order of the rest. The key is
// compared exactly; no case or whitespace normalization is applied. Duplicates
// are dropped silently.
func Dedupe(records []types.Record) []types.Record {
	seen := make(map[key]struct{}, len(records))
	out := make([]types.Record, 0, len(records))

	for _, r := range records {
		k := key{headline: r.Headline, sourceURL: r.SourceURL}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}

	return out
}
