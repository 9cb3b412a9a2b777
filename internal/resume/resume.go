// Package resume turns the plain text of a résumé into a structured feature set:
// matched skills, estimated experience, seniority tier, sections, bullet points,
// quantified-impact flag and education level.
//
// Everything here is deterministic and rule based. Functions keep no state beyond
// read-only tables built at init and are safe for concurrent use.
package resume

import "time"

// Processed is the feature set extracted from one document. FullText is the
// caller's input, untouched; CleanText is the normalized text every other field
// was derived from. It is built once by Extract and must be treated as read-only.
type Processed struct {
	FullText            string    `json:"fullText"`
	CleanText           string    `json:"cleanText"`
	Skills              []string  `json:"skills"`
	YearsOfExperience   int       `json:"yearsOfExperience"`
	CandidateLevel      Level     `json:"candidateLevel"`
	Sections            Sections  `json:"sections"`
	BulletPoints        []string  `json:"bulletPoints"`
	HasQuantifiedImpact bool      `json:"hasQuantifiedImpact"`
	EducationLevel      Education `json:"educationLevel"`
}

// Extract builds the feature set for raw document text using the current year to
// resolve "present" in date ranges. Any string is valid input.
func Extract(raw string) *Processed {
	return ExtractAt(raw, time.Now())
}

// ExtractAt is Extract with an explicit reference time.
func ExtractAt(raw string, now time.Time) *Processed {
	clean := Normalize(raw)

	skills := MatchSkills(clean)
	years := EstimateExperience(clean, now.Year())

	return &Processed{
		FullText:            raw,
		CleanText:           clean,
		Skills:              skills,
		YearsOfExperience:   years,
		CandidateLevel:      ClassifyLevel(years, len(skills)),
		Sections:            SplitSections(clean),
		BulletPoints:        ExtractBullets(clean),
		HasQuantifiedImpact: DetectImpact(clean),
		EducationLevel:      ClassifyEducation(clean),
	}
}

// Section returns the body of the named section, or "" when it was not detected.
func (p *Processed) Section(name string) string {
	body, _ := p.Sections.Get(name)
	return body
}
