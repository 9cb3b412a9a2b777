package resume

import (
	"fmt"
	"strings"
)

// Level is a coarse seniority tier.
type Level string

const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

var levelLabels = map[Level]string{
	LevelEntry:  "Entry Level",
	LevelMid:    "Mid Level",
	LevelSenior: "Senior Level",
}

// ClassifyLevel maps experience and skill breadth to a tier. Checks run senior first.
func ClassifyLevel(years, skillCount int) Level {
	if years >= 6 || (years >= 4 && skillCount >= 12) {
		return LevelSenior
	}
	if years >= 2 || (years >= 1 && skillCount >= 8) {
		return LevelMid
	}
	return LevelEntry
}

// ParseLevel accepts "entry", "mid" or "senior" in any case.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelLabels[level]; !ok {
		return "", fmt.Errorf("unknown level %q: must be entry, mid or senior", s)
	}
	return level, nil
}

// Label returns the human-readable name used in prompts, e.g. "Senior Level".
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return string(l)
}
