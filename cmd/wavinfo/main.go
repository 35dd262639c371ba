// This tool prints the format, duration and chunk layout of a wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cwbudde/riffwave"
	"github.com/cwbudde/riffwave/internal/logging"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	logging.Configure(os.Stderr)

	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal().Err(err).Msg("wavinfo failed")
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", riffwave.ErrIO, err)
	}

	sound, err := riffwave.NewFromBytes(buf)
	if err != nil {
		return err
	}

	if format, ok := sound.Format(); ok {
		fmt.Fprintf(out, "Format: %s\n", format)
		fmt.Fprintf(out, "Frames: %d\n", sound.NumFrames())
		fmt.Fprintf(out, "Duration: %s\n", sound.Duration())
	} else {
		fmt.Fprintln(out, "Format: none")
	}

	fmt.Fprintf(out, "PCM bytes: %d\n", len(sound.Data()))
	fmt.Fprintln(out, "Chunks:")

	return riffwave.WalkChunks(buf, func(c riffwave.Chunk) error {
		suffix := ""
		if c.UntilEOF() {
			suffix = " (until end of file)"
		}

		fmt.Fprintf(out, "\t%q at %d: %d bytes%s\n", c.ID, c.Offset, c.Size(), suffix)

		return nil
	})
}
