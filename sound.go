package riffwave

import (
	"fmt"
	"time"
)

// Sound holds one PCM audio asset: its format and raw interleaved sample
// bytes, exactly as stored in a data chunk.
//
// A Sound isn't safe for concurrent mutation.
type Sound struct {
	// format is nil until a format is loaded.
	format *Format
	data   []byte
}

// New returns an empty Sound.
func New() *Sound {
	return &Sound{}
}

// NewFromBytes decodes a wave buffer into a new Sound.
func NewFromBytes(buf []byte) (*Sound, error) {
	s := New()

	err := s.Load(buf)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// NewSound creates a Sound from a format and a payload. The payload is copied.
func NewSound(format Format, data []byte) (*Sound, error) {
	err := format.validate()
	if err != nil {
		return nil, err
	}

	return &Sound{
		format: &format,
		data:   append([]byte(nil), data...),
	}, nil
}

// Load decodes buf and replaces the format and payload together. On failure
// the Sound is left untouched.
//
// A buffer without fmt chunk leaves the Sound without format, one without data
// chunk leaves it with an empty payload.
func (s *Sound) Load(buf []byte) error {
	dec := NewDecoder(buf)

	err := dec.Decode()
	if err != nil {
		return err
	}

	var format *Format

	if f, ok := dec.Format(); ok {
		err := f.validate()
		if err != nil {
			logger.Debug().Err(err).Msg("wave carries an unusable fmt chunk")
			return fmt.Errorf("%w: %w", ErrFormat, err)
		}

		format = &f
	}

	s.format = format
	s.data = dec.PCM

	return nil
}

// Save encodes the Sound into a minimal wave buffer.
func (s *Sound) Save() ([]byte, error) {
	if s.format == nil {
		return nil, ErrUninitialized
	}

	return Encode(*s.format, s.data)
}

// Reset drops the payload and the format.
func (s *Sound) Reset() {
	s.format = nil
	s.data = nil
}

// Initialized reports whether a format is set.
func (s *Sound) Initialized() bool {
	return s != nil && s.format != nil
}

// Format returns the current format, false when unset.
func (s *Sound) Format() (Format, bool) {
	if !s.Initialized() {
		return Format{}, false
	}

	return *s.format, true
}

// SampleRate returns the samples per second, Unset when not initialized.
func (s *Sound) SampleRate() int {
	if !s.Initialized() {
		return Unset
	}

	return s.format.SampleRate
}

// NumChans returns the channel count, Unset when not initialized.
func (s *Sound) NumChans() int {
	if !s.Initialized() {
		return Unset
	}

	return s.format.NumChans
}

// BitDepth returns the bits per sample, Unset when not initialized.
func (s *Sound) BitDepth() int {
	if !s.Initialized() {
		return Unset
	}

	return s.format.BitDepth
}

// Data returns the raw PCM payload. The slice is owned by the Sound.
func (s *Sound) Data() []byte {
	if s == nil {
		return nil
	}

	return s.data
}

// NumFrames returns the number of complete sample frames in the payload.
func (s *Sound) NumFrames() int {
	if !s.Initialized() {
		return 0
	}

	return len(s.data) / (s.format.NumChans * bytesPerSample(s.format.BitDepth))
}

// Duration returns the playing time of the payload.
func (s *Sound) Duration() time.Duration {
	if !s.Initialized() {
		return 0
	}

	return pcmDuration(*s.format, len(s.data))
}

// String implements the Stringer interface.
func (s *Sound) String() string {
	if !s.Initialized() {
		return fmt.Sprintf("uninitialized sound, %d bytes", len(s.Data()))
	}

	return fmt.Sprintf("%s, %d bytes, duration: %s", s.format, len(s.data), s.Duration())
}
