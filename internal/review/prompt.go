package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Headings the comparison prompt instructs the model to emit. The summary
// parser and the partitioner both key off these exact strings, so they live in
// one place.
const (
	CriticalHeading = "### ❌ Critical Issues - Must Fix"
	WarningsHeading = "### ⚠️ Warnings & Recommendations"
	NoneIdentified  = "None identified."
)

// ComparisonErrorFeedback is stored as every section's feedback when the
// consolidated comparison call fails outright.
const ComparisonErrorFeedback = "Error processing cross-document comparison. Please try again."

// DocumentContext carries one section's review context into the consolidated
// comparison prompt.
type DocumentContext struct {
	SectionID        uuid.UUID       `json:"section_id"`
	SectionName      string          `json:"section_name"`
	Description      string          `json:"description"`
	ExampleContent   string          `json:"example_content"`
	AIInstructions   string          `json:"ai_instructions"`
	Extracted        ExtractedFields `json:"extracted"`
	ExtractionFailed bool            `json:"extraction_failed,omitempty"`
}

// BuildComparisonPrompt builds the single phase-2 prompt covering every
// document in the run. The output-format rules are strict: the partitioner
// depends on one `## <SectionName>` block per document and the summary parser
// depends on the sub-heading spellings above.
func BuildComparisonPrompt(docs []DocumentContext) string {
	docsJSON, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		docsJSON = []byte("[]")
	}

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = "- " + d.SectionName
	}

	firstName := "Document Name"
	if len(docs) > 0 {
		firstName = docs[0].SectionName
	}

	return fmt.Sprintf(`You are performing a comprehensive cross-document verification for an export shipment.

ALL DOCUMENTS AND THEIR EXTRACTED DATA:
%s

YOUR TASK:
Compare all documents and identify discrepancies, missing data, and verifications across the entire document set.

CRITICAL COMPARISONS TO PERFORM:
1. Consignor/Consignee names and addresses - must match across all documents
2. Total values - must match (e.g., Commercial Invoice grand total vs Export Permit total value)
3. Quantities - must match across documents
4. HS Codes, Permit numbers, PO numbers - must be consistent
5. Shipping marks, origin/destination - must align
6. Document dates - check for logical sequence

OUTPUT FORMAT - CRITICAL: You MUST create a separate section for EACH document listed below:
%s

For EACH document above, create a section in this EXACT format:

## %s

%s
- Use format: "Mismatch: <field> — '<value_in_this_doc>' vs '<value_in_other_doc>' in [Other Document Name]"
- Use format: "Missing: <required field> — not found in this document"
- If none, write "%s"

%s
- Use format: "Minor inconsistency: <field> — <brief description>"
- Use format: "Verified: <field> — '<value>' consistent across all documents"
- If none, write "%s"

REPEAT THE ABOVE SECTION FORMAT FOR EACH DOCUMENT.

IMPORTANT RULES:
- You MUST create separate ## sections for ALL %d documents
- Each section must start with EXACTLY: ## [Document Name]
- Perform all verifications yourself using the extracted data above
- Do NOT tell the user to cross-check anything
- Be specific about which documents have discrepancies
- Keep bullets SHORT and actionable
- No long paragraphs or prose
- DO NOT combine multiple documents into one section`,
		string(docsJSON),
		strings.Join(names, "\n"),
		firstName,
		CriticalHeading, NoneIdentified,
		WarningsHeading, NoneIdentified,
		len(docs),
	)
}
