package riffwave

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// Chunk is a RIFF sub-chunk located inside a WAVE buffer.
type Chunk struct {
	ID [4]byte
	// Length is the declared chunk length. Streaming producers that can't
	// know the size up front write a negative value, meaning the body runs to
	// the end of the buffer.
	Length int32
	// Offset is the position of the chunk header in the buffer.
	Offset int
	// Data is the chunk body. It aliases the walked buffer.
	Data []byte
}

// Size returns the effective body length.
func (c Chunk) Size() int {
	return len(c.Data)
}

// UntilEOF reports whether the chunk declared the rest-of-buffer sentinel.
func (c Chunk) UntilEOF() bool {
	return c.Length < 0
}

func (c Chunk) Clone() Chunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

// WalkChunks validates the RIFF/WAVE form header of buf and calls fn for each
// sub-chunk in order. Chunks are read back to back: no pad byte is skipped
// after odd sized bodies. Walking stops at the first error returned by fn.
func WalkChunks(buf []byte, fn func(Chunk) error) error {
	err := checkFormHeader(buf)
	if err != nil {
		return err
	}

	cursor := formHeaderSize
	for cursor < len(buf) {
		if len(buf)-cursor < chunkHeaderSize {
			return fmt.Errorf("%w: %d byte chunk header at offset %d", ErrTruncatedChunk, len(buf)-cursor, cursor)
		}

		chunk := Chunk{Offset: cursor}
		copy(chunk.ID[:], buf[cursor:cursor+4])
		chunk.Length = int32(binary.LittleEndian.Uint32(buf[cursor+4 : cursor+8]))

		bodyStart := cursor + chunkHeaderSize
		remaining := len(buf) - bodyStart

		size := int(chunk.Length)
		if chunk.UntilEOF() {
			size = remaining
		}

		if size > remaining {
			return fmt.Errorf("%w: %q declares %d bytes, %d left", ErrTruncatedChunk, chunk.ID, size, remaining)
		}

		chunk.Data = buf[bodyStart : bodyStart+size : bodyStart+size]

		err = fn(chunk)
		if err != nil {
			return err
		}

		cursor = bodyStart + size
	}

	return nil
}

// checkFormHeader validates the 12 byte RIFF form header. The form length is
// informational and isn't compared to the buffer size.
func checkFormHeader(buf []byte) error {
	if len(buf) < formHeaderSize {
		return fmt.Errorf("%w: form header is %d bytes", ErrTruncatedChunk, len(buf))
	}

	var id [4]byte
	copy(id[:], buf[0:4])

	if id != riff.RiffID {
		return fmt.Errorf("%w: %q - %w", ErrNotRIFF, id, riff.ErrFmtNotSupported)
	}

	copy(id[:], buf[8:12])

	if id != riff.WavFormatID {
		return fmt.Errorf("%w: %q - %w", ErrNotWAVE, id, riff.ErrFmtNotSupported)
	}

	return nil
}
