package classify

import "regexp"

type categoryRule struct {
	re       *regexp.Regexp
	category string
}

// Ordered first-match dispatch: an entry mentioning both an auction and a
// policy change is a "tender" because the tender rule comes first.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)\b(auction|tender|RfS|RFP|bid|awarded)\b`), "tender"},
	{regexp.MustCompile(`(?i)\b(policy|regulation|consultation|state-aid|EEG|grid code)\b`), "policy"},
	{regexp.MustCompile(`(?i)\b(project|NTP|COD|commission|construction)\b`), "project"},
	{regexp.MustCompile(`(?i)\b(price|tariff|LCOE|module price|battery price)\b`), "price"},
	{regexp.MustCompile(`(?i)\b(ancillary|capacity market|balancing|curtailment)\b`), "grid"},
	{regexp.MustCompile(`(?i)\b(OEM|inverter|module|battery|technology)\b`), "tech"},
}

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "market"

// Category assigns exactly one topical label to the classification text.
// This is a forced single-label classification; it never fails.
func Category(text string) string {
	for _, r := range categoryRules {
		if r.re.MatchString(text) {
			return r.category
		}
	}
	return DefaultCategory
}
