// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report exports the outcome of a conversion as an Excel
// workbook, so that rejected rules can be reviewed without re-running
// the converter in debug mode.
//
// The workbook has three sheets:
//
//	Summary  totals of the run
//	Domains  every domain and its rendered configuration line
//	Errors   every rule that could not be transformed, in feed order
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/gfwlist"
)

// Sheet names.
const (
	SheetSummary = "Summary"
	SheetDomains = "Domains"
	SheetErrors  = "Errors"
)

// Write renders res as an .xlsx workbook to w.
func Write(w io.Writer, res *gfwlist.Result) error {
	f, err := build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

// WriteFile renders res as an .xlsx workbook at path.
func WriteFile(path string, res *gfwlist.Result) error {
	f, err := build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

func build(res *gfwlist.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("report: style: %w", err)
	}

	// The default sheet becomes the summary.
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("report: %w", err)
	}

	summary := [][]any{
		{"Metric", "Value"},
		{"Domains", res.Total},
		{"Duplicates removed", res.DuplicatesRemoved},
		{"Untransformable rules", res.ErrorCount()},
		{"Skipped lines", res.Skipped},
	}
	if err := writeSheet(f, SheetSummary, bold, []float64{24, 12}, summary); err != nil {
		f.Close()
		return nil, err
	}

	domains := make([][]any, 0, len(res.Domains)+1)
	domains = append(domains, []any{"Domain", "Config line"})
	for i, d := range res.Domains {
		line := ""
		if i < len(res.Lines) {
			line = res.Lines[i]
		}
		domains = append(domains, []any{d, line})
	}
	if err := newSheet(f, SheetDomains); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, SheetDomains, bold, []float64{40, 60}, domains); err != nil {
		f.Close()
		return nil, err
	}

	errs := make([][]any, 0, len(res.Errors)+1)
	errs = append(errs, []any{"Line", "Rule", "Host", "Reason"})
	for _, e := range res.Errors {
		errs = append(errs, []any{e.Line, e.Rule, e.Host, e.Error()})
	}
	if err := newSheet(f, SheetErrors); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, SheetErrors, bold, []float64{8, 40, 30, 80}, errs); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func newSheet(f *excelize.File, name string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("report: new sheet %s: %w", name, err)
	}
	return nil
}

// writeSheet streams rows into sheet; the first row is the header.
func writeSheet(f *excelize.File, sheet string, headerStyle int, widths []float64, rows [][]any) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("report: %s: %w", sheet, err)
	}

	for i, w := range widths {
		if err := sw.SetColWidth(i+1, i+1, w); err != nil {
			return fmt.Errorf("report: %s: %w", sheet, err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("report: %s: %w", sheet, err)
		}

		var opts []excelize.RowOpts
		if i == 0 {
			opts = append(opts, excelize.RowOpts{StyleID: headerStyle})
		}
		if err := sw.SetRow(cell, row, opts...); err != nil {
			return fmt.Errorf("report: %s row %d: %w", sheet, i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("report: %s: %w", sheet, err)
	}
	return nil
}
