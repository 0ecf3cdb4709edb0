// Package excel exports a stored analysis run as a report workbook with one
// sheet per result family.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
	"stratcore/internal/sensitivity"
)

// BuildWorkbook assembles the report workbook. Sheets are only created for
// result families present in the stores.
func BuildWorkbook(runID core.RunID, tornado *sensitivity.Result, analogies []strategy.Analogy) (*excelize.File, error) {
	f := excelize.NewFile()

	if tornado != nil && len(tornado.Results) > 0 {
		if err := writeTornadoSheet(f, tornado); err != nil {
			return nil, err
		}
	}
	if len(analogies) > 0 {
		if err := writeAnalogySheet(f, analogies); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet if anything else was written.
	sheets := f.GetSheetList()
	if len(sheets) > 1 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeTornadoSheet(f *excelize.File, tornado *sensitivity.Result) error {
	const sheet = "Tornado"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Parameter", "Base Value", "Low %", "High %", "Avg Top EV", "Min EV", "Max EV", "Range Delta"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for row, r := range tornado.Results {
		values := []any{r.Param, r.BaseValue, r.RangePercentage.LowPct, r.RangePercentage.HighPct,
			r.AvgTopEV, r.MinEV, r.MaxEV, r.RangeDelta}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAnalogySheet(f *excelize.File, analogies []strategy.Analogy) error {
	const sheet = "Analogies"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Pattern", "Source Domain", "Target Domain", "Similarity", "Success Probability", "Lead Strategy"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for row, a := range analogies {
		lead := ""
		if len(a.AnalogousStrategies) > 0 {
			lead = a.AnalogousStrategies[0].Strategy
		}
		values := []any{a.StructuralMatch.PatternName, a.SourceDomain, a.TargetDomain,
			a.StructuralSimilarity, a.SuccessProbability, lead}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Filename returns the canonical attachment name for a run workbook.
func Filename(runID core.RunID) string {
	return fmt.Sprintf("analysis_%s.xlsx", runID)
}
