package report

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const errorSheet = "Errors"

// Writer generates downloadable error reports from failed upload rows.
// Generation is best effort: XLSX first, CSV when that fails.
type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteErrorReport writes the failed rows under the given header and returns
// the path of the generated file. An XLSX failure falls back to CSV.
func (w *Writer) WriteErrorReport(name string, header []string, rows [][]string) (string, error) {
	base := fmt.Sprintf("%s-errors-%s", sanitize(name), uuid.New().String()[:8])

	path, err := w.writeXLSX(base, header, rows)
	if err == nil {
		return path, nil
	}
	log.Printf("xlsx report generation failed, falling back to csv: %v", err)

	path, csvErr := w.writeCSV(base, header, rows)
	if csvErr != nil {
		return "", fmt.Errorf("failed to write error report: %w", csvErr)
	}
	return path, nil
}

func (w *Writer) writeXLSX(base string, header []string, rows [][]string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(errorSheet)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	if err := setRow(f, 1, header); err != nil {
		return "", err
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			return "", err
		}
	}

	path := filepath.Join(w.dir, base+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func setRow(f *excelize.File, rowNum int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(errorSheet, cell, &values)
}

func (w *Writer) writeCSV(base string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(w.dir, base+".csv")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func sanitize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	return filepath.Base(name)
}
