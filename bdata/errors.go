package bdata

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrResourceMissing  = errors.New("bin dataset resource missing")
	ErrEmptyDataset     = errors.New("bin dataset has no header row")
	ErrUnexpectedColumn = errors.New("unexpected column")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrMissingColumn    = errors.New("missing column")
)

//DecodeError reports that the dataset bytes are not valid UTF-8 text.
type DecodeError struct {
	Offset int //首个非法字节的位置
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bin dataset: invalid utf-8 at byte offset %d", e.Offset)
}

//ParseError reports a row or header that does not fit the dataset schema.
//Any ParseError invalidates the whole dataset.
type ParseError struct {
	Line   int
	Column int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bin dataset: parse error on line %d, column %q: %s", e.Line, e.Field, e.Err)
	}
	if e.Column > 0 {
		return fmt.Sprintf("bin dataset: parse error on line %d, column %d: %s", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("bin dataset: parse error on line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
