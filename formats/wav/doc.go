// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is done with github.com/go-audio/wav and is limited to 16-bit
// PCM, any channel count and sample rate.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// Readers that cannot seek are buffered in memory first.
//
// # Writing WAV Files
//
//	samples := []int16{100, -100, 200, -200} // two stereo frames
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, samples)
//
// WriteWAV16 writes the canonical 44-byte header followed by little-endian
// sample data, in chunks of 8KB.
//
// # Errors
//
//   - ErrNotWavFile: not a RIFF/WAVE file, or no fmt chunk
//   - ErrOnlyPCM16bitSupported: compressed, float or non 16-bit data
//   - ErrUnsupportedWavLayout: zero sample rate or channels
//   - ErrUnsupportedWavChunks: no data chunk
package wav
