package splitter

import (
	"fmt"
	"io"

	"github.com/freakmaxi/kertish-chunker/basics/common"
	"github.com/freakmaxi/kertish-chunker/basics/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// File interface is for the file content capability that the execution
// engine provides for the chunking
type File interface {
	Id() string
	Size() uint64

	OpenSeekable() (io.ReadSeekCloser, error)
}

// Splitter interface is for the parallel splittable chunking of file contents.
// The execution engine takes the initial restriction of a file, partitions it
// as it sees fit, creates one tracker for each piece and drives each tracker
// in a processing session on its own worker
type Splitter interface {
	InitialRestriction(file File) common.Restriction
	SplitRestriction(restriction common.Restriction) []common.Restriction
	NewTracker(restriction common.Restriction) (Tracker, error)

	Process(file File, tracker Tracker, chunkHandler func(chunk common.FileChunk) error) error
}

type splitter struct {
	ranger    Ranger
	extractor Extractor
	logger    *zap.Logger
}

// NewSplitter creates the Splitter interface for the parallel splittable
// chunking using the fixed chunk size
func NewSplitter(chunkSize uint32, logger *zap.Logger) (Splitter, error) {
	ranger, err := NewRanger(chunkSize)
	if err != nil {
		return nil, err
	}

	return &splitter{
		ranger:    ranger,
		extractor: NewExtractor(ranger),
		logger:    logger,
	}, nil
}

// InitialRestriction calculates the whole claimable chunk index interval of
// the file content
func (s *splitter) InitialRestriction(file File) common.Restriction {
	restriction := s.ranger.InitialRestriction(file.Size())

	s.logger.Info(
		fmt.Sprintf(
			"Splitting file `%s` (%d bytes) into %d chunks of %d bytes",
			file.Id(), file.Size(), restriction.Count(), s.ranger.ChunkSize(),
		),
	)

	return restriction
}

// SplitRestriction partitions the restriction into independently processable
// pieces. Default policy is one piece for each chunk index
func (s *splitter) SplitRestriction(restriction common.Restriction) []common.Restriction {
	return restriction.Units()
}

// NewTracker creates the tracker of one restriction piece for a worker
func (s *splitter) NewTracker(restriction common.Restriction) (Tracker, error) {
	return NewTracker(restriction)
}

// Process drives one restriction processing session over the file content.
// Claimed chunk indices are extracted and handed to the chunkHandler in
// increasing order. The reader of the session is scoped to this call and
// released on every exit path
func (s *splitter) Process(file File, tracker Tracker, chunkHandler func(chunk common.FileChunk) error) error {
	sessionId := uuid.New().String()

	reader, err := file.OpenSeekable()
	if err != nil {
		s.logger.Error(
			"File open is failed",
			zap.String("fileId", file.Id()),
			zap.String("sessionId", sessionId),
			zap.Error(err),
		)
		return errors.NewExtractError(file.Id(), s.ranger.StartOffset(tracker.Remaining().From), err)
	}
	defer func() { _ = reader.Close() }()

	for index := tracker.Remaining().From; tracker.TryClaim(index); index++ {
		chunk, err := s.extractor.Extract(reader, file.Id(), index)
		if err != nil {
			s.logger.Error(
				"Chunk extraction is failed",
				zap.String("fileId", file.Id()),
				zap.String("sessionId", sessionId),
				zap.Uint64("index", index),
				zap.Error(err),
			)
			return err
		}

		s.logger.Info(
			fmt.Sprintf(
				"Current restriction: %s. Chunk size: %d bytes. File name: `%s`",
				tracker.Remaining(), chunk.Size(), file.Id(),
			),
			zap.String("sessionId", sessionId),
		)

		if err := chunkHandler(chunk); err != nil {
			return err
		}
	}

	return nil
}

var _ Splitter = &splitter{}
