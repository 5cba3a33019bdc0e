package vpnsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrWrite is matched by every WriteError.
var ErrWrite = errors.New("cannot write workbook")

// WriteError reports a failure to persist a workbook.
type WriteError struct {
	Op   string // "render", "create", "write", "rename"
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports ErrWrite for every WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// ExtractionError represents an error during inspection.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "widths", "styles", "panes", "tables", "print_areas", "rows"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
