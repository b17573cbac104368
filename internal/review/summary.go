package review

import (
	"regexp"
	"strings"

	"docreview/internal/domain"
)

// Issue is one extracted bullet with the section it came from.
type Issue struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}

// Summary aggregates critical issues and warnings across a run's results.
type Summary struct {
	Critical []Issue `json:"critical"`
	Warnings []Issue `json:"warnings"`
}

// Pattern families for locating the issue blocks inside stored feedback. Ordered
// strictest first; the first family that matches wins. They tolerate the emoji
// and non-emoji heading spellings the comparison prompt has used.
var (
	criticalBlockRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)###\s*❌\s*Critical Issues`),
		regexp.MustCompile(`(?i)###\s*Critical Issues\s*-\s*Must Fix`),
		regexp.MustCompile(`(?i)###\s*Critical Issues`),
	}
	warningBlockRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)###\s*⚠️\s*Warnings`),
		regexp.MustCompile(`(?i)###\s*Warnings\s*&\s*Recommendations`),
		regexp.MustCompile(`(?i)###\s*Warnings`),
	}
)

// Summarize re-derives aggregate issue lists from stored per-section feedback.
// This is the single parser for the feedback format; the summary endpoint and
// the export writer both consume it.
func Summarize(results []domain.ReviewResult) Summary {
	var s Summary
	for _, r := range results {
		for _, line := range extractBullets(r.AIFeedback, criticalBlockRes) {
			s.Critical = append(s.Critical, Issue{Section: r.SectionName, Text: line})
		}
		for _, line := range extractBullets(r.AIFeedback, warningBlockRes) {
			s.Warnings = append(s.Warnings, Issue{Section: r.SectionName, Text: line})
		}
	}
	return s
}

// extractBullets finds the block opened by the first matching heading pattern
// and returns its bullet lines, skipping "None identified." placeholders.
func extractBullets(feedback string, headingRes []*regexp.Regexp) []string {
	for _, re := range headingRes {
		loc := re.FindStringIndex(feedback)
		if loc == nil {
			continue
		}

		// The pattern may match only a prefix of the heading line; skip the
		// rest of that line so a trailer like " - Must Fix" is not read as a
		// bullet.
		block := feedback[loc[1]:]
		if nl := strings.Index(block, "\n"); nl >= 0 {
			block = block[nl+1:]
		} else {
			block = ""
		}
		if end := strings.Index(block, "###"); end >= 0 {
			block = block[:end]
		}

		var bullets []string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*") {
				continue
			}
			line = strings.TrimSpace(strings.TrimLeft(line, "-* "))
			if line == "" || strings.Contains(line, NoneIdentified) {
				continue
			}
			bullets = append(bullets, line)
		}
		return bullets
	}
	return nil
}
