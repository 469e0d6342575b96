package classify

import "regexp"

// BaselineTag is present on every record.
const BaselineTag = "utility-scale"

type tagRule struct {
	re  *regexp.Regexp
	tag string
}

// Tag triggers are independent of each other: several may fire on the same
// text, each appending its tag once, in rule order.
var tagRules = []tagRule{
	{regexp.MustCompile(`(?i)\b(hybrid|PV\+BESS|RTC)\b`), "PV+BESS"},
	{regexp.MustCompile(`(?i)\bwind\b`), "wind"},
	{regexp.MustCompile(`(?i)\b(PV|solar)\b`), "PV"},
	{regexp.MustCompile(`(?i)\b(battery|BESS|storage)\b`), "storage"},
}

// Tags derives the topical tag set for the classification text, starting
// from the fixed baseline tag.
func Tags(text string) []string {
	tags := []string{BaselineTag}
	for _, r := range tagRules {
		if r.re.MatchString(text) {
			tags = append(tags, r.tag)
		}
	}
	return tags
}
