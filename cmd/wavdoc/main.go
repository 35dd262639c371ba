// This tool converts between wav files and their structured document form.
// The direction is picked from the file extensions: .wav, .json or .toml.
//
//	wavdoc -in voice.wav -out voice.toml
//	wavdoc -in voice.json -out voice.wav
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cwbudde/riffwave"
	"github.com/cwbudde/riffwave/internal/logging"
)

var (
	errMissingPaths  = errors.New("you must set both -in and -out")
	errUnknownFormat = errors.New("unknown file extension")
)

func main() {
	logging.Configure(os.Stderr)

	err := run(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("wavdoc failed")
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavdoc", flag.ContinueOnError)

	in := flagSet.String("in", "", "source file (.wav, .json or .toml)")
	out := flagSet.String("out", "", "destination file (.wav, .json or .toml)")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *in == "" || *out == "" {
		return errMissingPaths
	}

	sound, err := load(*in)
	if err != nil {
		return err
	}

	err = save(sound, *out)
	if err != nil {
		return err
	}

	log.Info().Str("in", *in).Str("out", *out).Stringer("sound", sound).Msg("converted")

	return nil
}

func load(path string) (*riffwave.Sound, error) {
	kind := strings.ToLower(filepath.Ext(path))
	if kind == ".wav" {
		return riffwave.LoadFile(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", riffwave.ErrIO, err)
	}

	sound := riffwave.New()

	switch kind {
	case ".json":
		err = json.Unmarshal(raw, sound)
	case ".toml":
		var doc riffwave.Document

		doc, err = riffwave.DecodeDocumentTOML(bytes.NewReader(raw))
		if err == nil {
			err = sound.FromDocument(doc)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return sound, nil
}

func save(sound *riffwave.Sound, path string) error {
	var (
		raw bytes.Buffer
		err error
	)

	switch kind := strings.ToLower(filepath.Ext(path)); kind {
	case ".wav":
		return sound.SaveFile(path)
	case ".json":
		enc := json.NewEncoder(&raw)
		enc.SetIndent("", "  ")
		err = enc.Encode(sound)
	case ".toml":
		err = riffwave.EncodeDocumentTOML(&raw, sound.ToDocument())
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, kind)
	}

	if err != nil {
		return err
	}

	err = os.WriteFile(path, raw.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", riffwave.ErrIO, err)
	}

	return nil
}
