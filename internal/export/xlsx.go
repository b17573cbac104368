package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"docreview/internal/domain"
	"docreview/internal/review"
)

const (
	summarySheet  = "Summary"
	feedbackSheet = "Feedback"
)

// summaryColumns defines the Summary sheet header row.
var summaryColumns = []string{"Severity", "Section", "Issue"}

// feedbackColumns defines the Feedback sheet header row.
var feedbackColumns = []string{"Order", "Section", "Feedback"}

// WriteWorkbook writes an xlsx workbook for one run to w: a Summary sheet with
// the aggregated critical/warning bullets and a Feedback sheet with the raw
// per-section feedback text.
func WriteWorkbook(w io.Writer, session *domain.ReviewSession, results []domain.ReviewResult) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), summarySheet)
	if _, err := f.NewSheet(feedbackSheet); err != nil {
		return fmt.Errorf("export.WriteWorkbook: create sheet: %w", err)
	}

	if err := writeSummarySheet(f, session, results); err != nil {
		return err
	}
	if err := writeFeedbackSheet(f, results); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export.WriteWorkbook: write: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, session *domain.ReviewSession, results []domain.ReviewResult) error {
	rows := [][]interface{}{
		{"Document", session.DocumentName},
		{"Ruleset", session.RulesetName},
		{"Status", string(session.Status)},
		{},
	}

	summary := review.Summarize(results)
	rows = append(rows, toRow(summaryColumns))
	for _, issue := range summary.Critical {
		rows = append(rows, []interface{}{"Critical", issue.Section, issue.Text})
	}
	for _, issue := range summary.Warnings {
		rows = append(rows, []interface{}{"Warning", issue.Section, issue.Text})
	}
	if len(summary.Critical) == 0 && len(summary.Warnings) == 0 {
		rows = append(rows, []interface{}{"", "", "No issues identified."})
	}

	return writeRows(f, summarySheet, rows)
}

func writeFeedbackSheet(f *excelize.File, results []domain.ReviewResult) error {
	rows := [][]interface{}{toRow(feedbackColumns)}
	for _, r := range results {
		rows = append(rows, []interface{}{r.SequenceOrder, r.SectionName, r.AIFeedback})
	}
	return writeRows(f, feedbackSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("export: cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: set cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func toRow(cols []string) []interface{} {
	row := make([]interface{}, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}
