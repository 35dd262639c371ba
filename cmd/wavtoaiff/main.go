// This tool converts a PCM wav file into an AIFF file stored next to the
// source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/riffwave"
	"github.com/cwbudde/riffwave/internal/logging"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	logging.Configure(os.Stderr)

	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("wavtoaiff failed")
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	sound, err := riffwave.LoadFile(sourcePath)
	if err != nil {
		return err
	}

	intBuf, err := sound.IntBuffer()
	if err != nil {
		return fmt.Errorf("failed to read samples: %w", err)
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	err = writeAIFF(outPath, intBuf)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func writeAIFF(path string, buf *audio.IntBuffer) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels)

	err = encoder.Write(toAIFFSamples(buf))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return encoder.Close()
}

// toAIFFSamples recenters 8bit samples: wav stores them unsigned, aiff signed.
func toAIFFSamples(buf *audio.IntBuffer) *audio.IntBuffer {
	if buf.SourceBitDepth != 8 {
		return buf
	}

	out := &audio.IntBuffer{
		Format:         buf.Format,
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: buf.SourceBitDepth,
	}
	for i, v := range buf.Data {
		out.Data[i] = v - 128
	}

	return out
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}
