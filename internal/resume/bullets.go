package resume

import (
	"regexp"
	"strings"
)

var (
	bulletPrefix   = regexp.MustCompile(`^[-•▪▸►◦*]\s*`)
	numberedPrefix = regexp.MustCompile(`^\d+[.)]\s+`)
)

// ExtractBullets returns the content of every list item in normalized text, in
// document order, with the marker stripped. Lines that are not list items are skipped.
func ExtractBullets(text string) []string {
	bullets := make([]string, 0)
	if text == "" {
		return bullets
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		var item string
		switch {
		case bulletPrefix.MatchString(trimmed):
			item = bulletPrefix.ReplaceAllString(trimmed, "")
		case numberedPrefix.MatchString(trimmed):
			item = numberedPrefix.ReplaceAllString(trimmed, "")
		default:
			continue
		}

		if item = strings.TrimSpace(item); item != "" {
			bullets = append(bullets, item)
		}
	}

	return bullets
}
