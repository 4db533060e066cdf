// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pcmmix/audio"
	"github.com/ik5/pcmmix/pcm"
)

// go-mp3 always produces interleaved stereo.
const mp3Channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
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

	// go-mp3 returns 16-bit little-endian PCM bytes
	bytesNeeded := len(dst) * pcm.BytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.dec, s.buf)
	samples := pcm.DecodeInto(dst, s.buf[:n], binary.LittleEndian)

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// A truncated last frame ends the stream like a clean EOF.
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("reading mp3 samples: %w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMp3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   mp3Channels,
		buf:        make([]byte, 8192),
	}, nil
}
