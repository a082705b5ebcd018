package errors

import "fmt"

// ExtractError struct is to keep the failure details of a chunk extraction
// attempt for the file
type ExtractError struct {
	FileId string
	Offset uint64

	cause error
}

// NewExtractError creates the extraction failure of the file using the
// attempted byte offset and the underlying cause
func NewExtractError(fileId string, offset uint64, cause error) error {
	return &ExtractError{
		FileId: fileId,
		Offset: offset,
		cause:  cause,
	}
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("chunk extraction is failed for `%s` at offset %d: %s", e.FileId, e.Offset, e.cause)
}

func (e *ExtractError) Unwrap() error {
	return e.cause
}

var _ error = &ExtractError{}
