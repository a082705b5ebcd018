package splitter

import (
	"io"

	"github.com/freakmaxi/kertish-chunker/basics/common"
	"github.com/freakmaxi/kertish-chunker/basics/errors"
)

// Extractor interface is for reading the exact content of a claimed chunk
// index from a random access byte source
type Extractor interface {
	Extract(reader io.ReadSeeker, fileId string, index uint64) (common.FileChunk, error)
}

type extractor struct {
	ranger Ranger
}

// NewExtractor creates the Extractor interface using the chunk index space
// calculation of the ranger
func NewExtractor(ranger Ranger) Extractor {
	return &extractor{
		ranger: ranger,
	}
}

// Extract positions the reader at the starting byte of the chunk index and
// reads the chunk content. Only the last chunk of the file can be shorter
// than the chunk size or empty, reaching the end of the file is not an error
func (e *extractor) Extract(reader io.ReadSeeker, fileId string, index uint64) (common.FileChunk, error) {
	startOffset := e.ranger.StartOffset(index)

	if _, err := reader.Seek(int64(startOffset), io.SeekStart); err != nil {
		return common.FileChunk{}, errors.NewExtractError(fileId, startOffset, err)
	}

	buffer := make([]byte, e.ranger.ChunkSize())

	read, err := io.ReadFull(reader, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return common.FileChunk{}, errors.NewExtractError(fileId, startOffset, err)
	}

	return common.NewFileChunk(fileId, buffer[:read]), nil
}

var _ Extractor = &extractor{}
