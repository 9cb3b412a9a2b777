package resume

import "regexp"

// quantifiedImpact matches measurable-outcome language. Percent and dollar signs do
// not survive normalization, so spelled-out forms are accepted as well.
var quantifiedImpact = regexp.MustCompile(
	`\d+\s*(?:%|percent\b|pct\b)` +
		`|\$\s*\d+|\d+\s*[km]?\s*(?:usd|dollars)\b` +
		`|increased|reduced|improved|grew|saved|generated|delivered` +
		`|managed\s+\d+`,
)

// DetectImpact reports whether text contains at least one quantified achievement.
func DetectImpact(text string) bool {
	return quantifiedImpact.MatchString(text)
}
