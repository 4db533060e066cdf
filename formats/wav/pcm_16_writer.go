// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/pcmmix/pcm"
)

const headerSize = 44

// dataChunkSize returns the data chunk size for n samples, or false when the
// RIFF size field cannot hold it.
func dataChunkSize(n int) (uint32, bool) {
	size := uint64(n) * pcm.BytesPerSample
	if n < 0 || size > math.MaxUint32-(headerSize-8) {
		return 0, false
	}

	return uint32(size), true
}

// WriteWAV16 writes a 16-bit PCM WAV with the given rate and channel count.
// samples are interleaved; the data chunk is always little-endian.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || channels > math.MaxUint16 || sampleRate < 1 || len(samples)%channels != 0 {
		return ErrUnsupportedWavLayout
	}

	dataSize, ok := dataChunkSize(len(samples))
	if !ok {
		return fmt.Errorf("%w: %d samples exceed the 4 GiB RIFF limit", ErrUnsupportedWavLayout, len(samples))
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	riffSize := 36 + dataSize

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Write 8KB at a time
	const chunkSize = 4096
	buf := make([]byte, min(len(samples), chunkSize)*pcm.BytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		n := pcm.EncodeInto(buf, chunk, binary.LittleEndian)

		if _, err := w.Write(buf[:n*pcm.BytesPerSample]); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
