package resume

import (
	"encoding/json"
	"regexp"
)

// Education is the highest detected credential. The zero value means none was found.
type Education string

const (
	EducationUnknown    Education = ""
	EducationPhD        Education = "phd"
	EducationMasters    Education = "masters"
	EducationBachelors  Education = "bachelors"
	EducationAssociates Education = "associates"
)

type credentialPattern struct {
	level   Education
	pattern *regexp.Regexp
}

// credentialPatterns are ordered by precedence. Apostrophes are gone after
// normalization, so "master's" is seen as "master s".
var credentialPatterns = []credentialPattern{
	{EducationPhD, regexp.MustCompile(`\bph\.?d\.?\b|\bdoctorate\b`)},
	{EducationMasters, regexp.MustCompile(`\bm\.?s\.?\b|\bmasters?\b|\bm\.?tech\b|\bm\.?b\.?a\.?\b`)},
	// "be" needs its dots, otherwise every "to be" would count.
	{EducationBachelors, regexp.MustCompile(`\bb\.?s\.?\b|\bbachelors?\b|\bb\.?tech\b|\bb\.e\.?\b|\bb\.?a\.?\b`)},
	{EducationAssociates, regexp.MustCompile(`\bassociates?\b|\bdiploma\b`)},
}

// ClassifyEducation returns the highest-ranked credential mentioned in normalized text.
func ClassifyEducation(text string) Education {
	for _, c := range credentialPatterns {
		if c.pattern.MatchString(text) {
			return c.level
		}
	}
	return EducationUnknown
}

// MarshalJSON encodes an unknown education level as null.
func (e Education) MarshalJSON() ([]byte, error) {
	if e == EducationUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(string(e))
}
