package timelog

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmptyImportFile  = errors.New("import file contains no data rows")
)
