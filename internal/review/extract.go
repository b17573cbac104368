package review

import (
	"encoding/json"
	"strings"
)

// ExtractedFields is the fixed extraction schema for trade/shipping document
// sections. Every field is a free-form string; absent fields stay empty.
type ExtractedFields struct {
	ConsignorName        string `json:"consignor_name"`
	ConsignorAddress     string `json:"consignor_address"`
	ConsigneeName        string `json:"consignee_name"`
	ConsigneeAddress     string `json:"consignee_address"`
	HSCode               string `json:"hs_code"`
	PermitNumber         string `json:"permit_number"`
	PONumber             string `json:"po_number"`
	CountryOfOrigin      string `json:"country_of_origin"`
	CountryOfDestination string `json:"country_of_destination"`
	Quantity             string `json:"quantity"`
	TotalValue           string `json:"total_value"`
	ShippingMarks        string `json:"shipping_marks"`
	ShippedFrom          string `json:"shipped_from"`
	ShippedTo            string `json:"shipped_to"`
	DocumentDate         string `json:"document_date"`
}

// Extraction is the tagged result of phase-1 field extraction. Failed marks a
// provider error or unparsable output; Fields is then the zero value and the run
// continues with an empty extraction rather than aborting.
type Extraction struct {
	Fields ExtractedFields `json:"fields"`
	Failed bool            `json:"failed,omitempty"`
}

// FailedExtraction returns the degraded result used when a section's extraction
// call errors or returns non-JSON text.
func FailedExtraction() Extraction {
	return Extraction{Failed: true}
}

// BuildExtractionPrompt returns the phase-1 extraction prompt for one section.
func BuildExtractionPrompt(sectionName string) string {
	return `Extract the following fields from this document section called "` + sectionName + `".
Return STRICT JSON only (no prose) with keys (use empty string or null if not present):
{
  "consignor_name": "",
  "consignor_address": "",
  "consignee_name": "",
  "consignee_address": "",
  "hs_code": "",
  "permit_number": "",
  "po_number": "",
  "country_of_origin": "",
  "country_of_destination": "",
  "quantity": "",
  "total_value": "",
  "shipping_marks": "",
  "shipped_from": "",
  "shipped_to": "",
  "document_date": ""
}`
}

// ParseExtraction validates provider output against the extraction schema.
// Code fences are tolerated; anything that does not decode into a JSON object
// yields a failed extraction.
func ParseExtraction(text string) Extraction {
	cleaned := stripCodeFence(text)
	if cleaned == "" {
		return FailedExtraction()
	}

	var fields ExtractedFields
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return FailedExtraction()
	}
	return Extraction{Fields: fields}
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
