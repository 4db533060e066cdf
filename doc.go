// SPDX-License-Identifier: EPL-2.0

// Package pcmmix mixes two 16-bit PCM signals by averaging them.
//
// The arithmetic lives in the pcm subpackage:
//
//	mixed, err := pcm.Mix(a, b, false) // little-endian byte slices
//	if errors.Is(err, pcm.ErrInvalidLength) {
//	    // padded length is not a multiple of 4 bytes
//	}
//
// Each output sample is (a+b)>>1 computed in 32 bits, so the result never
// overflows and never needs clamping. The shorter input is padded with
// silence, which halves the longer input's tail.
//
// This package connects pcm.Mix to encoded audio. NewRegistry returns an
// audio.Registry with the decoders from formats registered by extension,
// and MixSources drains two decoded sources and mixes them:
//
//	reg := pcmmix.NewRegistry()
//	dec, _ := reg.Get(filepath.Ext(name))
//	a, _ := dec.Decode(fileA)
//	b, _ := dec.Decode(fileB)
//	mixed, err := pcmmix.MixSources(a, b, false)
//
// Sources must agree on sample rate and channel count. There is no
// resampling or channel conversion; mismatches return ErrFormatMismatch.
//
// # Supported Formats
//
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//   - headerless 16-bit PCM via formats/raw
package pcmmix
