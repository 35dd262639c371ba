package riffwave

import (
	"errors"
	"math"
)

var (
	// ErrFormat indicates a buffer that is not a well formed RIFF/WAVE file.
	ErrFormat = errors.New("invalid RIFF/WAVE data")
	// ErrNotRIFF is returned when the buffer doesn't start with a RIFF tag.
	ErrNotRIFF = wrapFormat("RIFF tag not found")
	// ErrNotWAVE is returned when the RIFF form type isn't WAVE.
	ErrNotWAVE = wrapFormat("WAVE form type not found")
	// ErrTruncatedChunk is returned when a chunk header or body runs past the
	// end of the buffer.
	ErrTruncatedChunk = wrapFormat("truncated chunk")
	// ErrShortFmtChunk is returned when the fmt chunk body is smaller than the
	// 16 byte PCM record.
	ErrShortFmtChunk = wrapFormat("fmt chunk too short")
	// ErrUnsupportedFormat is returned for non PCM format tags.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrInvalidFormat is returned when rate, channels or bit depth aren't positive.
	ErrInvalidFormat = errors.New("invalid audio format")
	// ErrUninitialized is returned when encoding a Sound that was never loaded.
	ErrUninitialized = errors.New("sound is not initialized")
	// ErrPayloadTooLarge is returned when the payload doesn't fit a chunk length.
	ErrPayloadTooLarge = errors.New("payload too large for a RIFF chunk")
	// ErrIO wraps file system failures.
	ErrIO = errors.New("sound file i/o failed")
	// ErrDocument is returned when a document value has the wrong type.
	ErrDocument = errors.New("invalid sound document")
)

type formatError struct {
	msg string
}

func (e *formatError) Error() string { return e.msg }

func (e *formatError) Unwrap() error { return ErrFormat }

func wrapFormat(msg string) error {
	return &formatError{msg: msg}
}

const (
	// formHeaderSize is RIFF tag + form length + WAVE tag.
	formHeaderSize = 12
	// chunkHeaderSize is chunk id + signed chunk length.
	chunkHeaderSize = 8
	// pcmFmtSize is the fixed PCM fmt chunk body.
	pcmFmtSize = 16
	// maxChunkLength is the largest length a signed 32-bit chunk header can declare.
	maxChunkLength = math.MaxInt32
)

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}
