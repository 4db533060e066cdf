// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmmix/audio"
	"github.com/ik5/pcmmix/pcm"
)

type source struct {
	r          io.Reader
	order      binary.ByteOrder
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if err := audio.CheckDstSize(len(dst), s.channels); err != nil {
		return 0, err
	}

	bytesNeeded := len(dst) * pcm.BytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.r, s.buf)
	// A dangling odd byte at the end of the stream is dropped.
	samples := pcm.DecodeInto(dst, s.buf[:n], s.order)

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("reading raw samples: %w", err)
	}
}

// Decoder reads headerless interleaved 16-bit PCM. The stream carries no
// format information, so it has to be configured up front.
type Decoder struct {
	SampleRate int
	Channels   int
	BigEndian  bool
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SampleRate < 1 || d.Channels < 1 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidLayout, d.SampleRate, d.Channels)
	}

	return &source{
		r:          r,
		order:      pcm.Order(d.BigEndian),
		sampleRate: d.SampleRate,
		channels:   d.Channels,
	}, nil
}
