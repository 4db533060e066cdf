// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Only
// 16-bit PCM is accepted, with any channel count and sample rate.
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8, 24 or 32-bit, or AIFF-C
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// AIFF stores samples big-endian. The decoder returns them as native int16,
// so mixing them with pcm.Mix needs pcm.Encode with the byte order the
// other side of the mix uses.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrOnlyPCM16bitSupported: the bit depth is not 16
//   - ErrUnsupportedAiffLayout: zero sample rate or channels
package aiff
