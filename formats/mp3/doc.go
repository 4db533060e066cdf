// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always produces 16-bit little-endian interleaved stereo, so the
// returned source reports 2 channels regardless of the file's mode.
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMp3File)
//	}
//
//	buf := make([]int16, 4096) // must hold whole stereo frames
//	n, err := source.ReadSamples(buf)
//
// A stream that ends inside a frame is reported as io.EOF after the
// samples decoded so far.
package mp3
