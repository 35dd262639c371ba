package riffwave

import (
	"fmt"
	"os"
)

// LoadFile reads and decodes the named wave file.
func (s *Sound) LoadFile(name string) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("failed to read sound file")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	err = s.Load(buf)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}

// SaveFile encodes the Sound and writes it to the named file, replacing any
// existing content.
func (s *Sound) SaveFile(name string) error {
	buf, err := s.Save()
	if err != nil {
		return err
	}

	err = os.WriteFile(name, buf, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("failed to write sound file")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// LoadFile decodes the named wave file into a new Sound.
func LoadFile(name string) (*Sound, error) {
	s := New()

	err := s.LoadFile(name)
	if err != nil {
		return nil, err
	}

	return s, nil
}
