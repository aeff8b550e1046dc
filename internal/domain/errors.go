package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidTaxiCount  = errors.New("invalid taxi count")
	ErrMissingRegionName = errors.New("missing region name")
	ErrInvalidGeometry   = errors.New("invalid geometry")
	ErrDuplicateRegion   = errors.New("duplicate region")
	ErrEmptyGeometrySet  = errors.New("geometry file has no features")
)

// DataLoadError возвращается, если исходный файл отсутствует, не читается или
// не соответствует схеме. Line = 0, если ошибка не привязана к строке.
type DataLoadError struct {
	Path string
	Line int
	Err  error
}

func NewDataLoadError(path string, line int, err error) *DataLoadError {
	return &DataLoadError{Path: path, Line: line, Err: err}
}

func (e *DataLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("data load %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("data load %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
