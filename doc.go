// Package riffwave decodes and encodes uncompressed PCM audio stored in the
// RIFF/WAVE container.
//
// The codec works on in-memory buffers. Decode walks the sub-chunks of a
// RIFF/WAVE buffer and extracts the fmt record and the raw data payload,
// skipping every other chunk. Encode writes the minimal counterpart: one fmt
// chunk followed by one data chunk.
//
// Sound wraps a format and its payload as application state:
//
//   - Load/Save exchange wave buffers, LoadFile/SaveFile named files.
//   - ToDocument/FromDocument map the fields to a key-value Document, and
//     Sound implements json.Marshaler and json.Unmarshaler on top of it.
//   - IntBuffer/Float32Buffer expose the payload as go-audio sample buffers.
//
// Chunk lengths are read as signed values: a negative length, written by
// streaming producers, means the chunk extends to the end of the buffer.
// Odd sized chunks are expected without a trailing pad byte.
package riffwave
