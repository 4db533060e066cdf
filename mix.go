// SPDX-License-Identifier: EPL-2.0

package pcmmix

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmmix/audio"
	"github.com/ik5/pcmmix/formats/aiff"
	"github.com/ik5/pcmmix/formats/mp3"
	"github.com/ik5/pcmmix/formats/raw"
	"github.com/ik5/pcmmix/formats/vorbis"
	"github.com/ik5/pcmmix/formats/wav"
	"github.com/ik5/pcmmix/pcm"
)

const (
	// DefaultBufferSize is the read buffer, in samples, MixSources uses.
	DefaultBufferSize = 4096

	// DefaultRawSampleRate is the rate assumed for "pcm" and "raw" inputs.
	DefaultRawSampleRate = 16000
)

// NewRegistry returns a registry with every decoder in formats registered
// under its common file extensions. Raw input is read as 16 kHz mono
// little-endian; register a configured raw.Decoder to override it.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	rawDecoder := raw.Decoder{SampleRate: DefaultRawSampleRate, Channels: 1}
	reg.Register("pcm", rawDecoder)
	reg.Register("raw", rawDecoder)

	return reg
}

// ReadAll drains src and returns every interleaved sample it produced.
// bufferSize is rounded down to whole frames, and up to one frame when it is
// smaller than that.
func ReadAll(src audio.Source, bufferSize int) ([]int16, error) {
	if bufferSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferSize, bufferSize)
	}

	channels := max(src.Channels(), 1)
	bufferSize = max(bufferSize-bufferSize%channels, channels)

	samples := make([]int16, 0, max(src.SampleRate(), 0)*channels)
	buf := make([]int16, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return samples, nil
}

// padToPairs appends one silent frame when samples has an odd length, so the
// encoded buffer is a whole number of 4-byte sample pairs. An odd total
// implies an odd channel count, so the frame keeps the layout intact.
func padToPairs(samples []int16, channels int) []int16 {
	if len(samples)%2 == 0 {
		return samples
	}

	return append(samples, make([]int16, max(channels, 1))...)
}

// MixSources drains both sources and mixes them with pcm.Mix, returning
// 16-bit PCM in the requested byte order. Both sources must share sample
// rate and channel count; the shorter one is padded with silence. A source
// with an odd number of samples, such as mono audio with an odd frame
// count, gets one extra silent frame so pcm.Mix accepts it.
func MixSources(a, b audio.Source, bigEndian bool) ([]byte, error) {
	if a.SampleRate() != b.SampleRate() || a.Channels() != b.Channels() {
		return nil, fmt.Errorf("%w: %d Hz/%d ch and %d Hz/%d ch", ErrFormatMismatch,
			a.SampleRate(), a.Channels(), b.SampleRate(), b.Channels())
	}

	samplesA, err := ReadAll(a, DefaultBufferSize)
	if err != nil {
		return nil, fmt.Errorf("first source: %w", err)
	}

	samplesB, err := ReadAll(b, DefaultBufferSize)
	if err != nil {
		return nil, fmt.Errorf("second source: %w", err)
	}

	samplesA = padToPairs(samplesA, a.Channels())
	samplesB = padToPairs(samplesB, b.Channels())

	return pcm.Mix(pcm.Encode(samplesA, bigEndian), pcm.Encode(samplesB, bigEndian), bigEndian)
}
