package riffwave

import (
	"fmt"
	"time"

	"github.com/go-audio/riff"
)

// Decoder extracts the PCM format and payload from an in-memory RIFF/WAVE
// buffer. Only the fmt and data chunks are interpreted, anything else is
// skipped.
type Decoder struct {
	buf []byte

	// FmtChunk is nil when the buffer carries no fmt chunk.
	FmtChunk *FmtChunk
	// PCM is a copy of the data chunk body, nil when there is no data chunk.
	PCM []byte
	// NumChunks counts the sub-chunks that were traversed.
	NumChunks int

	decoded bool
	err     error
}

// NewDecoder creates a decoder for the passed buffer. The buffer isn't
// modified.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Decode parses the buffer. It is safe to call multiple times; the result of
// the first call is kept. On failure the decoder fields stay empty.
//
// A buffer without fmt or data chunk isn't an error, callers check Format
// and HasPCM.
func (d *Decoder) Decode() error {
	if d == nil {
		return fmt.Errorf("%w: nil decoder", ErrFormat)
	}

	if d.decoded {
		return d.err
	}

	d.decoded = true

	var (
		fmtChunk *FmtChunk
		pcm      []byte
		count    int
	)

	err := WalkChunks(d.buf, func(chunk Chunk) error {
		count++

		switch chunk.ID {
		case riff.FmtID:
			parsed, err := decodeFmtChunk(chunk.Data)
			if err != nil {
				return fmt.Errorf("failed to decode fmt chunk at offset %d: %w", chunk.Offset, err)
			}

			err = parsed.validate()
			if err != nil {
				return err
			}

			fmtChunk = parsed
		case riff.DataFormatID:
			pcm = append(make([]byte, 0, chunk.Size()), chunk.Data...)
		}

		return nil
	})
	if err != nil {
		d.err = err
		logger.Debug().Err(err).Int("size", len(d.buf)).Msg("wave decode failed")

		return d.err
	}

	d.FmtChunk = fmtChunk
	d.PCM = pcm
	d.NumChunks = count

	return nil
}

// Err returns the error of the last Decode call.
func (d *Decoder) Err() error {
	if d == nil {
		return nil
	}

	return d.err
}

// Format returns the decoded format, false if no fmt chunk was found.
func (d *Decoder) Format() (Format, bool) {
	if d == nil || d.FmtChunk == nil {
		return Format{}, false
	}

	return d.FmtChunk.Format(), true
}

// HasPCM returns positively if a data chunk was found.
func (d *Decoder) HasPCM() bool {
	return d != nil && d.PCM != nil
}

// PCMLen returns the total number of bytes in the PCM data chunk.
func (d *Decoder) PCMLen() int64 {
	if d == nil {
		return 0
	}

	return int64(len(d.PCM))
}

// Duration returns the playing time of the PCM payload.
func (d *Decoder) Duration() time.Duration {
	format, ok := d.Format()
	if !ok {
		return 0
	}

	return pcmDuration(format, len(d.PCM))
}

// Decode parses a RIFF/WAVE buffer and returns its format and payload.
// ok is false when the buffer has no fmt chunk.
func Decode(buf []byte) (format Format, ok bool, data []byte, err error) {
	dec := NewDecoder(buf)

	err = dec.Decode()
	if err != nil {
		return Format{}, false, nil, err
	}

	format, ok = dec.Format()

	return format, ok, dec.PCM, nil
}

func pcmDuration(format Format, size int) time.Duration {
	if !format.Valid() {
		return 0
	}

	frames := size / (format.NumChans * bytesPerSample(format.BitDepth))

	return time.Duration(float64(frames) / float64(format.SampleRate) * float64(time.Second))
}
