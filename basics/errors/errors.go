package errors

import "errors"

var (
	ErrChunkSize   = errors.New("chunk size must be bigger than zero")
	ErrRestriction = errors.New("restriction boundaries are not valid")
	ErrNotFile     = errors.New("path is not a file")
)
