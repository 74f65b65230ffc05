package trace

import "errors"

var (
	ErrEmptyPath    = errors.New("trace: output path cannot be empty")
	ErrInvalidRunID = errors.New("trace: invalid run id")
)
