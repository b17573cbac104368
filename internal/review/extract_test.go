package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docreview/internal/review"
)

func TestParseExtraction_PlainJSON(t *testing.T) {
	ext := review.ParseExtraction(`{"consignor_name": "Acme Exports", "total_value": "12,500.00"}`)

	assert.False(t, ext.Failed)
	assert.Equal(t, "Acme Exports", ext.Fields.ConsignorName)
	assert.Equal(t, "12,500.00", ext.Fields.TotalValue)
	assert.Empty(t, ext.Fields.HSCode)
}

func TestParseExtraction_CodeFenced(t *testing.T) {
	text := "```json\n{\"hs_code\": \"8471.30\", \"quantity\": \"40 cartons\"}\n```"
	ext := review.ParseExtraction(text)

	assert.False(t, ext.Failed)
	assert.Equal(t, "8471.30", ext.Fields.HSCode)
	assert.Equal(t, "40 cartons", ext.Fields.Quantity)
}

func TestParseExtraction_BareFence(t *testing.T) {
	text := "```\n{\"po_number\": \"PO-9912\"}\n```"
	ext := review.ParseExtraction(text)

	assert.False(t, ext.Failed)
	assert.Equal(t, "PO-9912", ext.Fields.PONumber)
}

func TestParseExtraction_InvalidJSON(t *testing.T) {
	ext := review.ParseExtraction("I could not read the document, sorry.")

	assert.True(t, ext.Failed)
	assert.Equal(t, review.ExtractedFields{}, ext.Fields)
}

func TestParseExtraction_Empty(t *testing.T) {
	assert.True(t, review.ParseExtraction("").Failed)
	assert.True(t, review.ParseExtraction("   \n").Failed)
}

func TestFailedExtraction(t *testing.T) {
	ext := review.FailedExtraction()
	assert.True(t, ext.Failed)
	assert.Equal(t, review.ExtractedFields{}, ext.Fields)
}

func TestBuildExtractionPrompt_NamesSectionAndSchema(t *testing.T) {
	prompt := review.BuildExtractionPrompt("Commercial Invoice")

	assert.Contains(t, prompt, `"Commercial Invoice"`)
	assert.Contains(t, prompt, `"consignor_name"`)
	assert.Contains(t, prompt, `"document_date"`)
	assert.Contains(t, prompt, "STRICT JSON")
}
