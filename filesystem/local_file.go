package filesystem

import (
	"io"
	"os"

	"github.com/freakmaxi/kertish-chunker/basics/errors"
	"github.com/freakmaxi/kertish-chunker/splitter"
)

type localFile struct {
	path string
	size uint64
}

// NewLocalFile creates the splitter.File capability for a file on the local
// file system
func NewLocalFile(path string) (splitter.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, errors.ErrNotFile
	}

	return &localFile{
		path: path,
		size: uint64(info.Size()),
	}, nil
}

// Id is the identifier of the file, on the local file system it is the path
func (l *localFile) Id() string {
	return l.path
}

func (l *localFile) Size() uint64 {
	return l.size
}

func (l *localFile) OpenSeekable() (io.ReadSeekCloser, error) {
	return os.Open(l.path)
}

var _ splitter.File = &localFile{}
