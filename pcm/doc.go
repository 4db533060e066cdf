// SPDX-License-Identifier: EPL-2.0

// Package pcm mixes and converts raw 16-bit PCM byte buffers.
//
// Buffers hold interleaved signed 16-bit samples in either byte order.
// Channels are not interpreted: a stereo buffer is mixed sample by sample
// exactly like a mono one.
//
// # Mixing
//
// Mix averages two buffers:
//
//	out, err := pcm.Mix(a, b, false) // little-endian
//	if errors.Is(err, pcm.ErrInvalidLength) {
//	    // padded length is not a multiple of 4 bytes
//	}
//
// Buffers of different length are allowed; the shorter one is mixed as if
// followed by silence. MixAll folds Mix over any number of payloads.
//
// # Conversion
//
// Decode and Encode convert between bytes and []int16. DecodeInto and
// EncodeInto do the same into caller supplied buffers without validation or
// allocation, for use on partial reads.
//
// All functions are pure and safe for concurrent use.
package pcm
