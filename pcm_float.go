package riffwave

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	scalePCMInt8  = 127.5
	scalePCMInt16 = 32768.0
	scalePCMInt24 = 8388608.0
	scalePCMInt32 = 2147483648.0
	floatPCM8Mid  = 127.5
)

var (
	errUnhandledBitDepth = errors.New("unhandled bit depth")
	errNilBuffer         = errors.New("can't add a nil buffer")
)

// sampleDecodeFunc returns a function that converts one little endian sample
// into an int. 8bit samples are unsigned, all other depths are signed.
func sampleDecodeFunc(bitDepth int) (func([]byte) int, error) {
	switch bitDepth {
	case 8:
		return func(b []byte) int { return int(b[0]) }, nil
	case 16:
		return func(b []byte) int { return int(int16(binary.LittleEndian.Uint16(b))) }, nil
	case 24:
		return func(b []byte) int { return int(audio.Int24LETo32(b)) }, nil
	case 32:
		return func(b []byte) int { return int(int32(binary.LittleEndian.Uint32(b))) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnhandledBitDepth, bitDepth)
	}
}

func sampleEncodeFunc(bitDepth int) (func([]byte, int), error) {
	switch bitDepth {
	case 8:
		return func(b []byte, v int) { b[0] = uint8(v) }, nil
	case 16:
		return func(b []byte, v int) { binary.LittleEndian.PutUint16(b, uint16(int16(v))) }, nil
	case 24:
		return func(b []byte, v int) {
			le := audio.Int32toInt24LEBytes(int32(v))
			copy(b, le[:])
		}, nil
	case 32:
		return func(b []byte, v int) { binary.LittleEndian.PutUint32(b, uint32(int32(v))) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnhandledBitDepth, bitDepth)
	}
}

// IntBuffer decodes the payload into integer samples. A trailing partial
// sample is ignored.
func (s *Sound) IntBuffer() (*audio.IntBuffer, error) {
	format, ok := s.Format()
	if !ok {
		return nil, ErrUninitialized
	}

	decode, err := sampleDecodeFunc(format.BitDepth)
	if err != nil {
		return nil, err
	}

	width := bytesPerSample(format.BitDepth)
	buf := &audio.IntBuffer{
		Format:         format.AudioFormat(),
		Data:           make([]int, len(s.data)/width),
		SourceBitDepth: format.BitDepth,
	}

	for i := range buf.Data {
		buf.Data[i] = decode(s.data[i*width : (i+1)*width])
	}

	return buf, nil
}

// Float32Buffer decodes the payload into samples normalized to [-1, 1].
func (s *Sound) Float32Buffer() (*audio.Float32Buffer, error) {
	intBuf, err := s.IntBuffer()
	if err != nil {
		return nil, err
	}

	buf := &audio.Float32Buffer{
		Format:         intBuf.Format,
		Data:           make([]float32, len(intBuf.Data)),
		SourceBitDepth: intBuf.SourceBitDepth,
	}

	for i, v := range intBuf.Data {
		buf.Data[i] = normalizePCMInt(v, intBuf.SourceBitDepth)
	}

	return buf, nil
}

// NewFromIntBuffer packs integer samples into a new Sound using bitDepth
// (8, 16, 24 or 32) as storage. Values are written as is, without clamping.
func NewFromIntBuffer(buf *audio.IntBuffer, bitDepth int) (*Sound, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	format := Format{
		SampleRate: buf.Format.SampleRate,
		NumChans:   buf.Format.NumChannels,
		BitDepth:   bitDepth,
	}

	err := format.validate()
	if err != nil {
		return nil, err
	}

	encode, err := sampleEncodeFunc(bitDepth)
	if err != nil {
		return nil, err
	}

	width := bytesPerSample(bitDepth)
	data := make([]byte, len(buf.Data)*width)

	for i, v := range buf.Data {
		encode(data[i*width:(i+1)*width], v)
	}

	return &Sound{format: &format, data: data}, nil
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func normalizePCMInt(sample int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - floatPCM8Mid) / scalePCMInt8)
	case 16:
		return float32(float64(sample) / scalePCMInt16)
	case 24:
		return float32(float64(sample) / scalePCMInt24)
	case 32:
		return float32(float64(sample) / scalePCMInt32)
	default:
		return 0
	}
}

// Float32ToPCMInt converts a normalized sample to the integer range of
// bitDepth. Out of range values are clamped.
func Float32ToPCMInt(value float32, bitDepth int) int {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 8:
		return int(math.Round(float64(value+1) * scalePCMInt8))
	case 16:
		return clampScaledPCM(value, scalePCMInt16)
	case 24:
		return clampScaledPCM(value, scalePCMInt24)
	case 32:
		return clampScaledPCM(value, scalePCMInt32)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64) int {
	sample := min(int64(math.Round(float64(value)*scale)), int64(scale)-1)

	return int(max(sample, -int64(scale)))
}
