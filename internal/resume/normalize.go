package resume

import (
	"regexp"
	"strings"
)

var (
	// Everything outside word chars, whitespace and . + - # @ becomes a space.
	disallowedChars = regexp.MustCompile(`[^\w\s.+\-#@]`)
	numberedMarker  = regexp.MustCompile(`^\d+[.)]\s`)

	lineEndings = strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		"–", "-",
		"—", "-",
		"−", "-",
	)
)

// bulletGlyphs are the list markers recognised at the start of a line.
const bulletGlyphs = "-•▪▸►◦*"

// Normalize lowercases raw text, replaces non-semantic punctuation with spaces and
// collapses whitespace. Line breaks survive (blank lines do not) and a leading list
// marker on a line is kept verbatim. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(lineEndings.Replace(raw), "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if normalized := normalizeLine(line); normalized != "" {
			out = append(out, normalized)
		}
	}

	return strings.Join(out, "\n")
}

func normalizeLine(line string) string {
	marker, rest := splitListMarker(strings.TrimSpace(line))

	rest = disallowedChars.ReplaceAllString(strings.ToLower(rest), " ")
	rest = strings.Join(strings.Fields(rest), " ")

	// Cleaning can expose a marker, e.g. "(-5)" becomes "-5".
	if marker == "" {
		if m, r := splitListMarker(rest); m != "" {
			marker, rest = m, strings.TrimSpace(r)
		}
	}

	switch {
	case marker != "" && rest != "":
		return marker + " " + rest
	case marker != "":
		return bareMarker(marker)
	default:
		return rest
	}
}

// bareMarker returns a marker that stands alone on its line. "1)" without trailing
// text no longer reads as a marker, so it is cleaned like ordinary text.
func bareMarker(marker string) string {
	if m, _ := splitListMarker(marker); m == marker {
		return marker
	}
	return strings.Join(strings.Fields(disallowedChars.ReplaceAllString(marker, " ")), " ")
}

// splitListMarker separates a leading bullet glyph or "N." / "N)" prefix from the rest of a trimmed line.
func splitListMarker(line string) (string, string) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, string(glyph)) {
			return string(glyph), line[len(string(glyph)):]
		}
	}

	if loc := numberedMarker.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[1]]), line[loc[1]:]
	}

	return "", line
}
