package analysis

import (
	"unicode/utf8"

	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

const (
	highScore        = 70
	lowScore         = 60
	denseBulletLen   = 120
	largeSkillList   = 15
	summaryMinSkills = 5
	impactMinBullets = 5
)

const (
	conflictKeywordHeavy  = "Resume is keyword-heavy which helps ATS but may feel robotic to a recruiter"
	conflictLacksKeywords = "Resume reads well for humans but lacks keywords that ATS scanners look for"
	conflictLongBullets   = "Long bullet points may help ATS extract more keywords, but recruiters skip dense text"
	conflictLargeSkills   = "Large skills list boosts ATS matching but can appear unfocused to a human reviewer"
	conflictNoSummary     = "Skills are listed but no summary ties them into a narrative, and recruiters want context"
	conflictNoMetrics     = "Multiple bullet points but none have measurable results, and both ATS and humans value metrics"
	conflictBalanced      = "No major conflicts detected: ATS and human readability are reasonably balanced"
)

// DetectConflicts lists places where optimising for an ATS hurts human
// readability or the reverse. The result is never empty.
func DetectConflicts(r *resume.Processed, atsScore, humanScore float64) []string {
	conflicts := make([]string, 0)

	if atsScore > highScore && humanScore < lowScore {
		conflicts = append(conflicts, conflictKeywordHeavy)
	}
	if atsScore < lowScore && humanScore > highScore {
		conflicts = append(conflicts, conflictLacksKeywords)
	}

	if r != nil {
		if n := len(r.BulletPoints); n > 0 {
			total := 0
			for _, b := range r.BulletPoints {
				total += utf8.RuneCountInString(b)
			}
			if float64(total)/float64(n) > denseBulletLen {
				conflicts = append(conflicts, conflictLongBullets)
			}
		}

		if len(r.Skills) > largeSkillList {
			conflicts = append(conflicts, conflictLargeSkills)
		}
		if r.Section("summary") == "" && len(r.Skills) >= summaryMinSkills {
			conflicts = append(conflicts, conflictNoSummary)
		}
		if !r.HasQuantifiedImpact && len(r.BulletPoints) >= impactMinBullets {
			conflicts = append(conflicts, conflictNoMetrics)
		}
	}

	if len(conflicts) == 0 {
		conflicts = append(conflicts, conflictBalanced)
	}

	return conflicts
}
