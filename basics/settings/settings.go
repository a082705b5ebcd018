package settings

import (
	"github.com/freakmaxi/kertish-chunker/basics/errors"
	"github.com/kelseyhightower/envconfig"
)

// Settings struct is to hold the chunking unit configuration taken from
// the environment
// ChunkSize is the fixed chunk byte size, it stays the same for the lifetime
// of one processing run
type Settings struct {
	ChunkSize uint32 `envconfig:"CHUNK_SIZE" default:"1048576"`
}

// Load creates the Settings using the environment variables and fails fast
// when the configuration is not usable
func Load() (Settings, error) {
	var settings Settings
	if err := envconfig.Process("", &settings); err != nil {
		return Settings{}, err
	}

	if settings.ChunkSize == 0 {
		return Settings{}, errors.ErrChunkSize
	}

	return settings, nil
}
