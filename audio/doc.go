// SPDX-License-Identifier: EPL-2.0

// Package audio defines the Source and Decoder abstractions shared by the
// format packages, and a registry to look decoders up by format key.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved signed 16-bit values, the same representation the
// pcm package decodes from raw bytes. ReadSamples returns io.EOF once the
// stream is exhausted:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Sources require len(dst) to be a whole number of frames and return
// ErrInvalidDstSize otherwise.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
//
// Keys are matched case-insensitively and may carry a leading dot.
package audio
