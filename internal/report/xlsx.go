package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/placement/internal/evaluation"
)

// Sheet names of the exported workbook.
const (
	SheetSummary  = "Summary"
	SheetSkills   = "Skills"
	SheetReview   = "Review"
	SheetMistakes = "Mistakes"
	SheetWriting  = "Writing"
)

// WriteXLSX writes r as an Excel workbook.
func WriteXLSX(w io.Writer, r *Report) error {
	f, err := Workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// Workbook builds the Excel workbook for r. The caller must Close it.
func Workbook(r *Report) (*excelize.File, error) {
	res := r.Result
	if res == nil {
		res = &evaluation.Result{}
	}

	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	wb := &workbook{f: f, header: bold}

	summary := [][]any{
		{"Report ID", r.ID},
		{"Candidate", r.Candidate},
		{"Question set", r.SetTitle},
		{"Version", r.SetVersion},
		{"Overall %", res.OverallPercent},
		{"Base %", res.BasePercent},
		{"Writing adjustment", res.WritingAdjustment},
		{"Predicted level", string(res.PredictedLevel)},
		{"Items", res.Items},
		{"Correct items", res.CorrectItems},
	}
	if r.Summary != "" {
		summary = append(summary, []any{"Summary", r.Summary})
	}
	wb.sheet(SheetSummary, []string{"Field", "Value"}, summary)

	skillRows := make([][]any, 0, len(res.Skills))
	for _, s := range res.Skills {
		skillRows = append(skillRows, []any{string(s.Skill), s.Correct, s.Total, s.Percent})
	}
	wb.sheet(SheetSkills, []string{"Skill", "Correct units", "Total units", "Percent"}, skillRows)

	reviewRows := make([][]any, 0, len(res.Recommendations))
	for i, rec := range res.Recommendations {
		reviewRows = append(reviewRows, []any{i + 1, string(rec.Topic), rec.Count, rec.Prescription})
	}
	wb.sheet(SheetReview, []string{"Rank", "Topic", "Count", "Prescription"}, reviewRows)

	mistakeRows := make([][]any, 0, len(res.Mistakes))
	for _, m := range res.Mistakes {
		mistakeRows = append(mistakeRows, []any{m.Section, string(m.Skill), m.ItemID, m.LevelHint, m.Prompt, m.Your, m.Correct})
	}
	wb.sheet(SheetMistakes, []string{"Section", "Skill", "Item", "Level", "Prompt", "Your answer", "Correct answer"}, mistakeRows)

	writingRows := make([][]any, 0, len(res.Writing))
	for _, wr := range res.Writing {
		writingRows = append(writingRows, []any{wr.Section, wr.ItemID, wr.Analysis.Score, wr.Band, wr.Analysis.Words, string(wr.Topic)})
	}
	wb.sheet(SheetWriting, []string{"Section", "Item", "Score", "Band", "Words", "Topic"}, writingRows)

	if wb.err == nil {
		wb.err = f.DeleteSheet("Sheet1")
	}
	if wb.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to build Excel workbook: %w", wb.err)
	}

	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

// workbook writes sheets and keeps the first error.
type workbook struct {
	f      *excelize.File
	header int
	err    error
}

func (wb *workbook) sheet(name string, headers []string, rows [][]any) {
	if wb.err != nil {
		return
	}
	if _, err := wb.f.NewSheet(name); err != nil {
		wb.err = err
		return
	}

	for col, h := range headers {
		wb.set(name, col+1, 1, h)
	}
	if len(headers) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := wb.f.SetCellStyle(name, first, last, wb.header); err != nil && wb.err == nil {
			wb.err = err
		}
	}

	for i, row := range rows {
		for col, v := range row {
			wb.set(name, col+1, i+2, v)
		}
	}
}

func (wb *workbook) set(sheet string, col, row int, v any) {
	if wb.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		wb.err = err
		return
	}
	if err := wb.f.SetCellValue(sheet, cell, v); err != nil {
		wb.err = err
	}
}
