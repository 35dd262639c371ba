package riffwave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

type testChunk struct {
	id     string
	length int32
	data   []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// parseWavChunks lists the sub-chunks of an encoded buffer, reading them back
// to back like the encoder writes them.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		length := int32(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		offset += 8

		end := offset + int(length)
		if length < 0 || end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, length: length, data: payload})

		offset = end
	}

	return chunks, nil
}

// buildWave assembles a RIFF/WAVE buffer with verbatim chunk lengths.
func buildWave(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	var body bytes.Buffer

	body.WriteString("WAVE")

	for _, ch := range chunks {
		if len(ch.id) != 4 {
			t.Fatalf("chunk id %q must be 4 bytes", ch.id)
		}

		body.WriteString(ch.id)

		err := binary.Write(&body, binary.LittleEndian, ch.length)
		if err != nil {
			t.Fatalf("write chunk length: %v", err)
		}

		body.Write(ch.data)
	}

	out := make([]byte, 8, 8+body.Len())
	copy(out, "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(body.Len()))

	return append(out, body.Bytes()...)
}

func sizedChunk(id string, data []byte) testChunk {
	return testChunk{id: id, length: int32(len(data)), data: data}
}

func pcmFmtBody(formatTag, channels uint16, rate uint32, bits uint16) []byte {
	body := make([]byte, 16)
	binary.LittleEndian.PutUint16(body[0:2], formatTag)
	binary.LittleEndian.PutUint16(body[2:4], channels)
	binary.LittleEndian.PutUint32(body[4:8], rate)
	binary.LittleEndian.PutUint32(body[8:12], rate*uint32(channels)*uint32(bits)/8)
	binary.LittleEndian.PutUint16(body[12:14], channels*bits/8)
	binary.LittleEndian.PutUint16(body[14:16], bits)

	return body
}

func rampPayload(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i * 7)
	}

	return out
}
