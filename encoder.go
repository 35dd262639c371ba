package riffwave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var errNilWriter = errors.New("can't write to a nil writer")

// Encoder writes minimal RIFF/WAVE files: the form header, one PCM fmt
// chunk and one data chunk, in that order. No pad byte follows an odd sized
// payload.
type Encoder struct {
	w io.Writer

	WrittenBytes int
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// Encode writes a complete wave file for the passed format and payload.
func (e *Encoder) Encode(format Format, data []byte) error {
	if e == nil || e.w == nil {
		return errNilWriter
	}

	err := format.validate()
	if err != nil {
		return err
	}

	if len(data) > maxChunkLength {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(data))
	}

	err = e.writeFormHeader(len(data))
	if err != nil {
		return err
	}

	err = e.writeFmtChunk(newPCMFmtChunk(format))
	if err != nil {
		return err
	}

	err = e.AddLE(riff.DataFormatID)
	if err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	err = e.AddLE(int32(len(data)))
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	n, err := e.w.Write(data)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	return nil
}

func (e *Encoder) writeFormHeader(pcmSize int) error {
	err := e.AddLE(riff.RiffID)
	if err != nil {
		return err
	}

	// everything after the form length field
	formLength := uint32(len(riff.WavFormatID) + chunkHeaderSize + pcmFmtSize + chunkHeaderSize + pcmSize)

	err = e.AddLE(formLength)
	if err != nil {
		return err
	}

	return e.AddLE(riff.WavFormatID)
}

func (e *Encoder) writeFmtChunk(chunk *FmtChunk) error {
	err := e.AddLE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.AddLE(int32(pcmFmtSize))
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.FormatTag)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.AddLE(chunk.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.AddLE(chunk.AvgBytesPerSec)
	if err != nil {
		return fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	err = e.AddLE(chunk.BlockAlign)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.BitsPerSample)
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	return nil
}

// Encode returns the wave file for the passed format and payload.
func Encode(format Format, data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, formHeaderSize+chunkHeaderSize+pcmFmtSize+chunkHeaderSize+len(data)))

	err := NewEncoder(buf).Encode(format, data)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
