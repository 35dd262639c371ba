package riffwave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestEncodeLayout(t *testing.T) {
	payload := rampPayload(100)

	out, err := Encode(Format{SampleRate: 16000, NumChans: 1, BitDepth: 16}, payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if len(out) != 144 {
		t.Fatalf("encoded %d bytes, want 144", len(out))
	}

	checks := []struct {
		name   string
		offset int
		want   string
	}{
		{"riff tag", 0, "RIFF"},
		{"wave tag", 8, "WAVE"},
		{"fmt tag", 12, "fmt "},
		{"data tag", 36, "data"},
	}

	for _, c := range checks {
		if got := string(out[c.offset : c.offset+4]); got != c.want {
			t.Fatalf("%s=%q, want %q", c.name, got, c.want)
		}
	}

	fields := []struct {
		name   string
		offset int
		size   int
		want   uint32
	}{
		{"form length", 4, 4, 136},
		{"fmt length", 16, 4, 16},
		{"format tag", 20, 2, 1},
		{"channels", 22, 2, 1},
		{"sample rate", 24, 4, 16000},
		{"avg byte rate", 28, 4, 32000},
		{"block align", 32, 2, 2},
		{"bits per sample", 34, 2, 16},
		{"data length", 40, 4, 100},
	}

	for _, f := range fields {
		var got uint32
		if f.size == 2 {
			got = uint32(binary.LittleEndian.Uint16(out[f.offset:]))
		} else {
			got = binary.LittleEndian.Uint32(out[f.offset:])
		}

		if got != f.want {
			t.Fatalf("%s=%d, want %d", f.name, got, f.want)
		}
	}

	if !bytes.Equal(out[44:], payload) {
		t.Fatal("payload not written verbatim")
	}
}

func TestEncodeChunkInventory(t *testing.T) {
	out, err := Encode(Format{SampleRate: 44100, NumChans: 2, BitDepth: 24}, rampPayload(33))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	chunks, err := parseWavChunks(out)
	if err != nil {
		t.Fatalf("parse chunks: %v", err)
	}

	if len(chunks) != 2 || chunks[0].id != "fmt " || chunks[1].id != "data" {
		t.Fatalf("unexpected chunk inventory %+v", chunks)
	}

	if chunks[1].length != 33 {
		t.Fatalf("data length=%d, want 33", chunks[1].length)
	}

	// no pad byte after the odd payload
	if len(out) != 12+8+16+8+33 {
		t.Fatalf("encoded %d bytes, want %d", len(out), 12+8+16+8+33)
	}
}

func TestEncodeAvgByteRateTruncates(t *testing.T) {
	out, err := Encode(Format{SampleRate: 11025, NumChans: 1, BitDepth: 12}, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// 11025 * 12 / 8 = 16537.5
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 16537 {
		t.Fatalf("avg byte rate=%d, want 16537", got)
	}
}

func TestEncodeRejectsInvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"unset", Format{SampleRate: Unset, NumChans: Unset, BitDepth: Unset}},
		{"zero rate", Format{SampleRate: 0, NumChans: 1, BitDepth: 16}},
		{"zero channels", Format{SampleRate: 8000, NumChans: 0, BitDepth: 16}},
		{"negative bits", Format{SampleRate: 8000, NumChans: 1, BitDepth: -16}},
		{"too many channels", Format{SampleRate: 8000, NumChans: 1 << 16, BitDepth: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := NewEncoder(&buf).Encode(tt.format, []byte{1, 2})
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("err=%v, want ErrInvalidFormat", err)
			}

			if buf.Len() != 0 {
				t.Fatalf("wrote %d bytes for an invalid format", buf.Len())
			}
		})
	}
}

func TestEncoderWrittenBytes(t *testing.T) {
	var buf bytes.Buffer

	enc := NewEncoder(&buf)

	err := enc.Encode(Format{SampleRate: 8000, NumChans: 1, BitDepth: 8}, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if enc.WrittenBytes != buf.Len() || enc.WrittenBytes != 47 {
		t.Fatalf("WrittenBytes=%d, buffer=%d, want 47", enc.WrittenBytes, buf.Len())
	}
}

type failingWriter struct {
	after int
}

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errWriteFailed
	}

	w.after--

	return len(p), nil
}

func TestEncoderPropagatesWriteErrors(t *testing.T) {
	for _, after := range []int{0, 3, 11} {
		err := NewEncoder(&failingWriter{after: after}).Encode(Format{SampleRate: 8000, NumChans: 1, BitDepth: 8}, []byte{1})
		if !errors.Is(err, errWriteFailed) {
			t.Fatalf("after %d writes: err=%v, want errWriteFailed", after, err)
		}
	}

	var nilEnc *Encoder
	if err := nilEnc.Encode(Format{SampleRate: 1, NumChans: 1, BitDepth: 8}, nil); !errors.Is(err, errNilWriter) {
		t.Fatalf("err=%v, want errNilWriter", err)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		size   int
	}{
		{Format{SampleRate: 8000, NumChans: 1, BitDepth: 8}, 0},
		{Format{SampleRate: 16000, NumChans: 1, BitDepth: 16}, 100},
		{Format{SampleRate: 22050, NumChans: 2, BitDepth: 16}, 4096},
		{Format{SampleRate: 44100, NumChans: 2, BitDepth: 24}, 777},
		{Format{SampleRate: 96000, NumChans: 6, BitDepth: 32}, 1 << 14},
		{Format{SampleRate: 1, NumChans: 65535, BitDepth: 65535}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			payload := rampPayload(tt.size)

			out, err := Encode(tt.format, payload)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			format, ok, data, err := Decode(out)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			if !ok || format != tt.format {
				t.Fatalf("format=%+v (ok=%t), want %+v", format, ok, tt.format)
			}

			if !bytes.Equal(data, payload) || len(data) != tt.size {
				t.Fatalf("payload mismatch, got %d bytes want %d", len(data), tt.size)
			}
		})
	}
}
