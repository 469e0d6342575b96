package classify

import (
	"net/url"
	"regexp"
	"strings"
)

// geoRule maps a compiled pattern to its region/country pair. The rule list
// is evaluated top to bottom and the first hit wins, so earlier rules take
// precedence over later ones.
type geoRule struct {
	re      *regexp.Regexp
	region  string
	country string
}

var geoRules = []geoRule{
	{regexp.MustCompile(`(?i)\b(Germany|German|Bundesnetzagentur|BNetzA|Fraunhofer|TenneT|50Hertz|Amprion|TransnetBW)\b`), "Germany", "DE"},
	{regexp.MustCompile(`(?i)\b(India|MNRE|SECI|CEA|CERC|Gujarat|Maharashtra|Rajasthan|Grid-India|POSOCO)\b`), "India", "IN"},
	{regexp.MustCompile(`(?i)\b(Europe|European Commission|EU)\b`), "Europe", "EU"},
}

// Geo defaults when neither the rule list nor the link domain matches.
const (
	DefaultRegion  = "Global"
	DefaultCountry = ""
)

// RegionCountry infers a coarse (region, country) pair from the combined
// classification text and the entry link. Link text takes part in the pattern
// scan; the link host is only consulted as a fallback when no rule matched.
// It never fails: unmatched input resolves to ("Global", "").
func RegionCountry(text, link string) (string, string) {
	scanText := text + " " + link
	for _, r := range geoRules {
		if r.re.MatchString(scanText) {
			return r.region, r.country
		}
	}

	if strings.HasSuffix(linkHost(link), ".de") {
		return "Germany", "DE"
	}

	return DefaultRegion, DefaultCountry
}

func linkHost(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
