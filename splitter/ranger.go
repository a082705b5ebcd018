package splitter

import (
	"github.com/freakmaxi/kertish-chunker/basics/common"
	"github.com/freakmaxi/kertish-chunker/basics/errors"
)

// Ranger interface is for the chunk index space calculation of a file content
type Ranger interface {
	ChunkSize() uint32

	InitialRestriction(totalBytes uint64) common.Restriction
	StartOffset(index uint64) uint64
}

type ranger struct {
	chunkSize uint32
}

// NewRanger creates the Ranger interface for the chunk index space
// calculation using the fixed chunk size
func NewRanger(chunkSize uint32) (Ranger, error) {
	if chunkSize == 0 {
		return nil, errors.ErrChunkSize
	}

	return &ranger{
		chunkSize: chunkSize,
	}, nil
}

func (r *ranger) ChunkSize() uint32 {
	return r.chunkSize
}

// InitialRestriction calculates the whole claimable chunk index interval of
// a file content. The chunk count formula counts one chunk more than a
// ceiling division, so the last chunk of the interval can be empty
func (r *ranger) InitialRestriction(totalBytes uint64) common.Restriction {
	numChunks := 1 + totalBytes/uint64(r.chunkSize)

	return common.Restriction{From: 1, To: 1 + numChunks}
}

// StartOffset locates the starting byte of the chunk index in the whole file.
// index must be bigger than zero
func (r *ranger) StartOffset(index uint64) uint64 {
	return uint64(r.chunkSize) * (index - 1)
}

var _ Ranger = &ranger{}
