package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRowsXLSX(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"Id Number", "Name", "Time In"},
		{"1001", "Dela Cruz, Juan", "07:58"},
	})

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Id Number", "Name", "Time In"}, rows[0])
	assert.Equal(t, "1001", rows[1][0])
}

func TestReadRowsUnsupportedFormat(t *testing.T) {
	_, err := ReadRows("timelogs.ods")
	assert.Error(t, err)
}

func TestCellDate(t *testing.T) {
	got, ok := CellDate("2024-12-25")
	assert.True(t, ok)
	assert.Equal(t, "2024-12-25", got)

	// 45651 is the Excel serial for 2024-12-25
	got, ok = CellDate("45651")
	assert.True(t, ok)
	assert.Equal(t, "2024-12-25", got)

	_, ok = CellDate("")
	assert.False(t, ok)

	_, ok = CellDate("not a date")
	assert.False(t, ok)
}
