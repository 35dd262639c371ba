package riffwave

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
)

// Document keys.
const (
	KeyRate     = "m_Rate"
	KeyChannels = "m_Channels"
	KeyBits     = "m_Bits"
	KeyWaveData = "m_WaveData"
)

var unsetFormat = Format{SampleRate: Unset, NumChans: Unset, BitDepth: Unset}

// Document is the generic key-value form of a Sound. Scalars are integers,
// the payload is a byte string.
type Document map[string]any

// ToDocument copies the Sound fields into a new document. Unset scalars are
// written as Unset.
func (s *Sound) ToDocument() Document {
	return Document{
		KeyRate:     s.SampleRate(),
		KeyChannels: s.NumChans(),
		KeyBits:     s.BitDepth(),
		KeyWaveData: append([]byte{}, s.Data()...),
	}
}

// FromDocument updates the Sound from doc. Keys missing from doc leave the
// matching field untouched, unlike Load which replaces everything.
//
// The merged scalars must end up either all positive or all Unset, otherwise
// ErrDocument is returned and nothing changes.
func (s *Sound) FromDocument(doc Document) error {
	merged := [3]int{s.SampleRate(), s.NumChans(), s.BitDepth()}

	for i, key := range [3]string{KeyRate, KeyChannels, KeyBits} {
		v, ok := doc[key]
		if !ok {
			continue
		}

		n, err := intValue(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDocument, key, err)
		}

		merged[i] = n
	}

	var data []byte

	v, hasData := doc[KeyWaveData]
	if hasData {
		switch payload := v.(type) {
		case []byte:
			data = append([]byte{}, payload...)
		case string:
			data = []byte(payload)
		case nil:
			data = nil
		default:
			return fmt.Errorf("%w: %s: unexpected %T", ErrDocument, KeyWaveData, v)
		}
	}

	format := Format{SampleRate: merged[0], NumChans: merged[1], BitDepth: merged[2]}

	var next *Format

	switch {
	case format == unsetFormat:
	case format.Valid():
		next = &format
	default:
		return fmt.Errorf("%w: partial format %s", ErrDocument, format)
	}

	s.format = next
	if hasData {
		s.data = data
	}

	return nil
}

func intValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int64ToInt(n)
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int64ToInt(int64(n))
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, fmt.Errorf("%v is not an integer", n)
		}

		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%v is not an integer: %w", n, err)
		}

		return int64ToInt(i)
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}

func int64ToInt(n int64) (int, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("%d out of range", n)
	}

	return int(n), nil
}

type jsonDocument struct {
	Rate     *int    `json:"m_Rate,omitempty"`
	Channels *int    `json:"m_Channels,omitempty"`
	Bits     *int    `json:"m_Bits,omitempty"`
	WaveData *[]byte `json:"m_WaveData,omitempty"`
}

// MarshalJSON implements json.Marshaler. The payload is base64 encoded.
func (s *Sound) MarshalJSON() ([]byte, error) {
	rate, chans, bits, data := s.SampleRate(), s.NumChans(), s.BitDepth(), s.Data()
	if data == nil {
		data = []byte{}
	}

	return json.Marshal(jsonDocument{Rate: &rate, Channels: &chans, Bits: &bits, WaveData: &data})
}

// UnmarshalJSON implements json.Unmarshaler with FromDocument semantics.
func (s *Sound) UnmarshalJSON(b []byte) error {
	var raw jsonDocument

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocument, err)
	}

	doc := Document{}
	if raw.Rate != nil {
		doc[KeyRate] = *raw.Rate
	}

	if raw.Channels != nil {
		doc[KeyChannels] = *raw.Channels
	}

	if raw.Bits != nil {
		doc[KeyBits] = *raw.Bits
	}

	if raw.WaveData != nil {
		doc[KeyWaveData] = *raw.WaveData
	}

	return s.FromDocument(doc)
}

// EncodeDocumentTOML writes doc as TOML. The payload is base64 encoded.
func EncodeDocumentTOML(w io.Writer, doc Document) error {
	out := make(map[string]any, len(doc))

	for k, v := range doc {
		if payload, ok := v.([]byte); ok {
			v = base64.StdEncoding.EncodeToString(payload)
		}

		out[k] = v
	}

	err := toml.NewEncoder(w).Encode(out)
	if err != nil {
		return fmt.Errorf("failed to encode TOML document: %w", err)
	}

	return nil
}

// DecodeDocumentTOML reads a document written by EncodeDocumentTOML.
func DecodeDocumentTOML(r io.Reader) (Document, error) {
	var raw map[string]any

	_, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	doc := Document(raw)

	if v, ok := doc[KeyWaveData]; ok {
		encoded, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unexpected %T", ErrDocument, KeyWaveData, v)
		}

		payload, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDocument, KeyWaveData, err)
		}

		doc[KeyWaveData] = payload
	}

	return doc, nil
}
