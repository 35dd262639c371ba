package riffwave

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// Unset is reported by the Sound accessors when no format is loaded.
const Unset = -1

// Format describes the PCM layout of a payload.
type Format struct {
	SampleRate int
	NumChans   int
	BitDepth   int
}

// Valid reports whether every field is positive and fits the fmt record.
func (f Format) Valid() bool {
	return f.SampleRate > 0 && f.SampleRate <= math.MaxInt32 &&
		f.NumChans > 0 && f.NumChans <= math.MaxUint16 &&
		f.BitDepth > 0 && f.BitDepth <= math.MaxUint16
}

func (f Format) validate() error {
	if !f.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}

	return nil
}

// avgBytesPerSec truncates like the fmt record's integer division does.
func (f Format) avgBytesPerSec() int64 {
	return int64(f.SampleRate) * int64(f.BitDepth) * int64(f.NumChans) / 8
}

// AudioFormat converts to the go-audio format description.
func (f Format) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: f.NumChans,
		SampleRate:  f.SampleRate,
	}
}

// String implements the Stringer interface.
func (f Format) String() string {
	return fmt.Sprintf("%d Hz @ %d bits, %d channel(s)", f.SampleRate, f.BitDepth, f.NumChans)
}
