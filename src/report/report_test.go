// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/gfwlist"
	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/report"
)

func sampleResult(t *testing.T) *gfwlist.Result {
	t.Helper()

	c := gfwlist.New(gfwlist.WithGroup("g"))
	res, err := c.Process(context.Background(), "||b.com\n||a.com\na.com\n!note\n192.0.2.1\nlocalhost")
	require.NoError(t, err)
	return res
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResult(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetSummary, report.SheetDomains, report.SheetErrors}, f.GetSheetList())

	summary, err := f.GetRows(report.SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Metric", "Value"},
		{"Domains", "2"},
		{"Duplicates removed", "1"},
		{"Untransformable rules", "2"},
		{"Skipped lines", "1"},
	}, summary)

	domains, err := f.GetRows(report.SheetDomains)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Domain", "Config line"},
		{"a.com", "nameserver /a.com/g"},
		{"b.com", "nameserver /b.com/g"},
	}, domains)

	errs, err := f.GetRows(report.SheetErrors)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Line", "Rule", "Host", "Reason"},
		{"5", "192.0.2.1", "192.0.2.1", "192.0.2.1 is a IP."},
		{"6", "localhost", "localhost", "localhost is invalid."},
	}, errs)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, report.WriteFile(path, &gfwlist.Result{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetErrors)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Line", "Rule", "Host", "Reason"}}, rows)
}

func TestWriteFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "report.xlsx")
	assert.Error(t, report.WriteFile(path, &gfwlist.Result{}))
}
