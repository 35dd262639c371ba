package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/riffwave"
)

func writeWave(t *testing.T, format riffwave.Format, size int) string {
	t.Helper()

	buf, err := riffwave.Encode(format, make([]byte, size))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	path := filepath.Join(t.TempDir(), "in.wav")

	err = os.WriteFile(path, buf, 0o644)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	return path
}

func TestRunMissingPath(t *testing.T) {
	err := run(nil, &bytes.Buffer{})
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("expected errMissingPath, got %v", err)
	}
}

func TestRunInvalidPath(t *testing.T) {
	err := run([]string{"/definitely/not/here.wav"}, &bytes.Buffer{})
	if !errors.Is(err, riffwave.ErrIO) {
		t.Fatalf("err=%v, want ErrIO", err)
	}
}

func TestRunPrintsLayout(t *testing.T) {
	path := writeWave(t, riffwave.Format{SampleRate: 8000, NumChans: 1, BitDepth: 16}, 16000)

	var out bytes.Buffer

	err := run([]string{path}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, want := range []string{
		"Format: 8000 Hz @ 16 bits, 1 channel(s)",
		"Frames: 8000",
		"Duration: 1s",
		"PCM bytes: 16000",
		`"fmt " at 12: 16 bytes`,
		`"data" at 36: 16000 bytes`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunRejectsNonWave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")

	err := os.WriteFile(path, []byte("RIFF\x04\x00\x00\x00AVI "), 0o644)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	err = run([]string{path}, &bytes.Buffer{})
	if !errors.Is(err, riffwave.ErrNotWAVE) {
		t.Fatalf("err=%v, want ErrNotWAVE", err)
	}
}
