package classify

import "regexp"

// BaselineImpact is the score of an entry carrying no salience signal.
const BaselineImpact = 3

var (
	// Hundreds-of-megawatts range or a bare gigawatt-unit mention.
	capacityRe = regexp.MustCompile(`(?i)\b(GW|[3-9]\d{2}\s*MW)\b`)
	// Explicit gigawatt-scale quantity; the only path to a score of 5.
	gigawattRe = regexp.MustCompile(`(?i)\b(>?\s*1000\s*MW|gigawatt)\b`)
	policyRe   = regexp.MustCompile(`(?i)\b(policy|auction result|capacity market|state-aid)\b`)
)

// Impact scores the salience of an entry on a 1-5 scale. The capacity-scale
// and policy-language signal families are evaluated independently and
// combined by taking the maximum, never summed: stacking smaller signals
// cannot reach 5, only an explicit gigawatt-scale quantity can.
func Impact(text string) int {
	score := BaselineImpact
	if capacityRe.MatchString(text) {
		score = 4
	}
	if gigawattRe.MatchString(text) {
		score = 5
	}
	if policyRe.MatchString(text) && score < 4 {
		score = 4
	}
	return score
}
