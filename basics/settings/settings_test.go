package settings

import (
	"os"
	"testing"

	"github.com/freakmaxi/kertish-chunker/basics/errors"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("CHUNK_SIZE")

	settings, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, uint32(1048576), settings.ChunkSize)
}

func TestLoad_Custom(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "4096")

	settings, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, uint32(4096), settings.ChunkSize)
}

func TestLoad_ZeroChunkSize(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "0")

	_, err := Load()

	assert.Equal(t, errors.ErrChunkSize, err)
}

func TestLoad_NotParsable(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "huge")

	_, err := Load()

	assert.NotNil(t, err)
}
