package resume

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

// HeaderSection holds content that appears before the first recognised heading.
const HeaderSection = "header"

// maxHeadingLen keeps long sentences that merely mention a heading word from
// being treated as headings.
const maxHeadingLen = 60

type headingPattern struct {
	name    string
	pattern *regexp.Regexp
}

// headingPatterns are tested in order; the first match names the section.
var headingPatterns = []headingPattern{
	{"experience", regexp.MustCompile(`\b(experience|work\s*history|employment|professional\s*experience)\b`)},
	{"education", regexp.MustCompile(`\b(education|academic|degree|university|college)\b`)},
	{"skills", regexp.MustCompile(`\b(skills|technical\s*skills|technologies|competencies|proficiencies)\b`)},
	{"projects", regexp.MustCompile(`\b(projects|portfolio|personal\s*projects)\b`)},
	{"summary", regexp.MustCompile(`\b(summary|objective|about|profile|overview)\b`)},
	{"certifications", regexp.MustCompile(`\b(certifications?|licenses?|credentials?)\b`)},
	{"achievements", regexp.MustCompile(`\b(achievements?|awards?|honors?|accomplishments?)\b`)},
}

// Section is a named block of résumé content.
type Section struct {
	Name string
	Body string
}

// Sections keeps sections in the order they were first detected. Names are unique.
type Sections []Section

// Get returns the body stored under name.
func (s Sections) Get(name string) (string, bool) {
	for _, section := range s {
		if section.Name == name {
			return section.Body, true
		}
	}
	return "", false
}

// Names returns section names in detection order.
func (s Sections) Names() []string {
	names := make([]string, 0, len(s))
	for _, section := range s {
		names = append(names, section.Name)
	}
	return names
}

// MarshalJSON encodes sections as a JSON object, preserving detection order.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(section.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(section.Body)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s Sections) set(name, body string) Sections {
	for i := range s {
		if s[i].Name == name {
			s[i].Body = body
			return s
		}
	}
	return append(s, Section{Name: name, Body: body})
}

// SplitSections partitions normalized text by heading lines. Heading lines are
// consumed; when a heading repeats, its last body wins.
func SplitSections(text string) Sections {
	sections := make(Sections, 0)
	if text == "" {
		return sections
	}

	current := HeaderSection
	var content []string

	flush := func() {
		if len(content) == 0 {
			return
		}
		if body := strings.TrimSpace(strings.Join(content, "\n")); body != "" {
			sections = sections.set(current, body)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := headingName(line); ok {
			flush()
			current = name
			content = content[:0]
			continue
		}
		content = append(content, line)
	}
	flush()

	return sections
}

func headingName(line string) (string, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(line)) >= maxHeadingLen {
		return "", false
	}
	for _, h := range headingPatterns {
		if h.pattern.MatchString(line) {
			return h.name, true
		}
	}
	return "", false
}
