package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteErrorReport_XLSX(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	header := []string{"Id Number", "Name", "Loan Type", "Principal Balance", "Monthly Deduction", "Remarks"}
	rows := [][]string{
		{"1001", "Dela Cruz, Juan", "SSS Salary Loan", "12000.50", "500.00", "Unknown loan type"},
		{"1002", "Santos, Maria", "Pag-IBIG MPL", "8000", "400", "Employee not found"},
	}

	path, err := writer.WriteErrorReport("principal balance", header, rows)
	require.NoError(t, err)
	assert.Contains(t, path, "principal-balance-errors-")
	assert.Contains(t, path, ".xlsx")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Errors")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, header, got[0])
	assert.Equal(t, rows[0], got[1])
	assert.Equal(t, rows[1], got[2])
}

func TestWriteErrorReport_EmptyRows(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	path, err := writer.WriteErrorReport("loans", []string{"Id Number", "Remarks"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Errors")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestWriteCSVFallbackFormat(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	path, err := writer.writeCSV("deductions", []string{"Id Number", "Remarks"}, [][]string{{"1001", "bad amount"}})
	require.NoError(t, err)
	assert.Contains(t, path, "deductions.csv")
}
