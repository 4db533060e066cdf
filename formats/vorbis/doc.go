// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. The library produces float32 values in [-1.0, 1.0]; they are
// scaled to int16 with utils.Float32ToInt16, clamping anything outside
// that range.
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // no identification header
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// The buffer passed to ReadSamples must hold whole frames, that is a
// multiple of Channels() samples.
package vorbis
