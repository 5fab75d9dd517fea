package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReportXLSX(t *testing.T) {
	batch, report := sampleBatch()

	var buf bytes.Buffer
	require.NoError(t, WriteReportXLSX(&buf, batch, &report))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Contains(t, f.GetSheetList(), "Results")
	assert.Contains(t, f.GetSheetList(), "Summary")

	header, err := f.GetCellValue("Results", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Invoice ID", header)

	firstID, err := f.GetCellValue("Results", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-1", firstID)

	label, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)
	total, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestWriteReportXLSX_LengthMismatch(t *testing.T) {
	batch, report := sampleBatch()
	report.Results = report.Results[:1]

	var buf bytes.Buffer
	assert.Error(t, WriteReportXLSX(&buf, batch, &report))
}
