package finance

import (
	"encoding/json"
	"fmt"
)

type EmployeesPage struct {
	Success     bool       `json:"success"`
	Employees   []Employee `json:"employees"`
	PageNumber  int        `json:"page_number"`
	TotalPages  int        `json:"total_pages"`
	TotalCount  int        `json:"total_count"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartDataResponse struct {
	Success   bool      `json:"success"`
	ChartData ChartData `json:"chart_data"`
}

type FilterOptionsResponse struct {
	Success bool     `json:"success"`
	Options []string `json:"options"`
}

// UploadResult is the outcome of a bulk upload. The server reports failed
// rows under a key that varies per upload type; all variants land in Failed.
type UploadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`

	Errors          ErrorRows `json:"errors,omitempty"`
	ErrorRows       ErrorRows `json:"error_rows,omitempty"`
	NotUploadedRows ErrorRows `json:"not_uploaded_rows,omitempty"`
}

// Failed returns whichever failed-row payload the server used.
func (r *UploadResult) Failed() ErrorRows {
	if len(r.Errors) > 0 {
		return r.Errors
	}
	if len(r.ErrorRows) > 0 {
		return r.ErrorRows
	}
	return r.NotUploadedRows
}

// ErrorRows is a list of failed spreadsheet rows. Cells arrive as mixed JSON
// scalars and are normalized to strings for report generation.
type ErrorRows [][]string

func (e *ErrorRows) UnmarshalJSON(data []byte) error {
	var raw [][]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rows := make([][]string, 0, len(raw))
	for _, cells := range raw {
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			switch v := cell.(type) {
			case nil:
				row = append(row, "")
			case string:
				row = append(row, v)
			case float64:
				// JSON numbers; trim the trailing .0 on integers
				if v == float64(int64(v)) {
					row = append(row, fmt.Sprintf("%d", int64(v)))
				} else {
					row = append(row, fmt.Sprintf("%v", v))
				}
			default:
				row = append(row, fmt.Sprintf("%v", v))
			}
		}
		rows = append(rows, row)
	}
	*e = rows
	return nil
}
