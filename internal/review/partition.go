package review

import "regexp"

// topLevelHeading matches the boundary before the next top-level section: a
// newline, "##", whitespace, and a first character that is not another '#'
// (so "### ..." sub-headings never terminate a block).
var topLevelHeading = regexp.MustCompile(`\n##[ \t]+[^#\s]`)

// PartitionFeedback extracts the feedback block for one section from the full
// comparison response: from its "## <name>" heading (case-insensitive, with an
// optional surrounding [..]) up to but not including the next top-level "## "
// heading or end of text. The full text is re-scanned per section and matched
// ranges are not consumed, so duplicate heading text can hand the same range to
// two sections.
func PartitionFeedback(fullText, sectionName string) (string, bool) {
	headRe := regexp.MustCompile(`(?i)##\s*\[?` + regexp.QuoteMeta(sectionName) + `\]?`)
	loc := headRe.FindStringIndex(fullText)
	if loc == nil {
		return "", false
	}

	rest := fullText[loc[0]:]
	if next := topLevelHeading.FindStringIndex(rest); next != nil {
		return rest[:next[0]], true
	}
	return rest, true
}

// FallbackFeedback is stored for a section whose heading never appears in the
// comparison response.
func FallbackFeedback(sectionName string) string {
	return "## " + sectionName + "\n\n" + WarningsHeading + "\n- No specific feedback generated for this document in the review."
}
