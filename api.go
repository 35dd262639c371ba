package riffwave

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (d *Decoder) FormatChunk() *FmtChunk {
	if d == nil || d.FmtChunk == nil {
		return nil
	}

	return d.FmtChunk.Clone()
}

// Chunks returns copies of every sub-chunk in the decoder buffer, in file
// order. It returns nil when the buffer doesn't walk cleanly.
func (d *Decoder) Chunks() []Chunk {
	if d == nil {
		return nil
	}

	var out []Chunk

	err := WalkChunks(d.buf, func(c Chunk) error {
		out = append(out, c.Clone())
		return nil
	})
	if err != nil {
		return nil
	}

	return out
}
