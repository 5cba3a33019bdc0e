package models

import (
	"errors"
	"fmt"
)

// ErrEmptyWorkbook indicates a workbook without sheets.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// ErrUnnamedSheet indicates a sheet with an empty name.
var ErrUnnamedSheet = errors.New("sheet name is empty")

// ErrDuplicateSheet indicates two sheets sharing a name.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// ErrEmptyTable indicates a table without a header row.
var ErrEmptyTable = errors.New("table has no header")

// ErrRaggedRow indicates a row whose column count differs from the header.
var ErrRaggedRow = errors.New("row width differs from header")

// TableError locates a validation failure within a workbook.
type TableError struct {
	Sheet string
	Row   int // 1-based, 0 when the failure is not row specific
	Err   error
}

func (e *TableError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("sheet %q row %d: %v", e.Sheet, e.Row, e.Err)
	}
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
