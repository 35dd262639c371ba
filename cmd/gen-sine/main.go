package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/riffwave"
	"github.com/cwbudde/riffwave/internal/logging"
)

var errInvalidLength = errors.New("length must be positive")

func main() {
	logging.Configure(os.Stderr)

	err := run(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("gen-sine failed")
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bitDepth := flagSet.Int("bits", 16, "bits per sample (8, 16, 24 or 32)")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *length <= 0 {
		return fmt.Errorf("%w: %f", errInvalidLength, *length)
	}

	log.Info().Float64("seconds", *length).Float64("hz", *frequency).Msg("generating sine wav")

	numSamples := int(float64(*sampleRate) * *length)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: *sampleRate},
		Data:           make([]int, numSamples),
		SourceBitDepth: *bitDepth,
	}

	for i := 0; i < numSamples; i++ {
		fv := math.Sin(float64(i) / float64(*sampleRate) * *frequency * 2 * math.Pi)
		buf.Data[i] = riffwave.Float32ToPCMInt(float32(fv), *bitDepth)
	}

	sound, err := riffwave.NewFromIntBuffer(buf, *bitDepth)
	if err != nil {
		return err
	}

	return sound.SaveFile(*output)
}
