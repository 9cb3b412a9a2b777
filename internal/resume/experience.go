package resume

import (
	"regexp"
	"strconv"
)

const (
	minRangeYear      = 1990
	maxRangeYear      = 2030
	maxYearsSinceGrad = 40
)

const monthPrefix = `(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*)?`

var (
	directExperience = regexp.MustCompile(`\b(\d{1,2})\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)\b`)
	dateRange        = regexp.MustCompile(monthPrefix + `\b(\d{4})\s*(?:-+|to)\s*` + monthPrefix + `(\d{4}|present|current|now)\b`)
	graduationYear   = regexp.MustCompile(`(?:graduated?|class\s*of)\s*(\d{4})\b`)
)

// EstimateExperience returns the best single estimate of years of experience in
// normalized text. Rules are tried in order and the first one that yields a value wins:
// an explicit "N years of experience" phrase (first occurrence), the longest
// plausible date range, years since graduation. 0 means no evidence.
func EstimateExperience(text string, currentYear int) int {
	if m := directExperience.FindStringSubmatch(text); m != nil {
		years, _ := strconv.Atoi(m[1])
		return years
	}

	if span, ok := longestDateRange(text, currentYear); ok {
		return span
	}

	if m := graduationYear.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		if diff := currentYear - year; diff >= 0 && diff <= maxYearsSinceGrad {
			return diff
		}
	}

	return 0
}

// longestDateRange returns the maximum span over all valid ranges. Ranges are not
// summed: roles may overlap or be listed out of order.
func longestDateRange(text string, currentYear int) (int, bool) {
	best, found := 0, false

	for _, m := range dateRange.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		if start < minRangeYear || start > maxRangeYear {
			continue
		}

		end := currentYear
		if n, err := strconv.Atoi(m[2]); err == nil {
			end = n
		}
		if end < start {
			continue
		}

		if span := end - start; !found || span > best {
			best, found = span, true
		}
	}

	return best, found
}
