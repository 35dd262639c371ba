package riffwave

import (
	"encoding/binary"
	"fmt"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE

	// pcmBlockAlign is the block alignment written by the encoder.
	pcmBlockAlign = 2

	extensibleSize = 22
)

// FmtChunk stores the parsed WAV fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     int32
	AvgBytesPerSec int32
	BlockAlign     uint16
	BitsPerSample  uint16
	// ExtraData holds the cbSize prefixed extension, if any.
	ExtraData []byte
	// SubFormat is set for WAVE_FORMAT_EXTENSIBLE records.
	SubFormat *[16]byte
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f
	out.ExtraData = append([]byte(nil), f.ExtraData...)

	if f.SubFormat != nil {
		sub := *f.SubFormat
		out.SubFormat = &sub
	}

	return &out
}

// EffectiveFormatTag resolves the extensible sub-format when present.
func (f *FmtChunk) EffectiveFormatTag() uint16 {
	if f == nil {
		return 0
	}

	if f.FormatTag == wavFormatExtensible && f.SubFormat != nil {
		return binary.LittleEndian.Uint16(f.SubFormat[:2])
	}

	return f.FormatTag
}

// Format returns the audio format described by the chunk.
func (f *FmtChunk) Format() Format {
	if f == nil {
		return Format{}
	}

	return Format{
		SampleRate: int(f.SampleRate),
		NumChans:   int(f.NumChannels),
		BitDepth:   int(f.BitsPerSample),
	}
}

func decodeFmtChunk(body []byte) (*FmtChunk, error) {
	if len(body) < pcmFmtSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFmtChunk, len(body))
	}

	chunk := &FmtChunk{
		FormatTag:      binary.LittleEndian.Uint16(body[0:2]),
		NumChannels:    binary.LittleEndian.Uint16(body[2:4]),
		SampleRate:     int32(binary.LittleEndian.Uint32(body[4:8])),
		AvgBytesPerSec: int32(binary.LittleEndian.Uint32(body[8:12])),
		BlockAlign:     binary.LittleEndian.Uint16(body[12:14]),
		BitsPerSample:  binary.LittleEndian.Uint16(body[14:16]),
	}

	if len(body) < pcmFmtSize+2 {
		return chunk, nil
	}

	extraSize := int(binary.LittleEndian.Uint16(body[16:18]))
	extra := body[18:]

	if extraSize < len(extra) {
		extra = extra[:extraSize]
	}

	chunk.ExtraData = append([]byte(nil), extra...)

	if chunk.FormatTag == wavFormatExtensible && len(chunk.ExtraData) >= extensibleSize {
		var sub [16]byte
		copy(sub[:], chunk.ExtraData[6:22])
		chunk.SubFormat = &sub
	}

	return chunk, nil
}

func (f *FmtChunk) validate() error {
	tag := f.EffectiveFormatTag()
	if tag != wavFormatPCM {
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, tag)
	}

	return nil
}

func newPCMFmtChunk(format Format) *FmtChunk {
	return &FmtChunk{
		FormatTag:      wavFormatPCM,
		NumChannels:    uint16(format.NumChans),
		SampleRate:     int32(format.SampleRate),
		AvgBytesPerSec: int32(format.avgBytesPerSec()),
		BlockAlign:     pcmBlockAlign,
		BitsPerSample:  uint16(format.BitDepth),
	}
}
