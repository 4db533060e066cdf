// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmmix/audio"
	"github.com/ik5/pcmmix/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32
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

	if cap(s.floatBuf) < len(dst) {
		s.floatBuf = make([]float32, len(dst))
	}
	s.floatBuf = s.floatBuf[:len(dst)]

	// oggvorbis counts interleaved values, always a multiple of Channels().
	n, err := s.dec.Read(s.floatBuf)
	n = utils.Float32sToInt16s(dst, s.floatBuf[:n])

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("reading vorbis samples: %w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		floatBuf:   make([]float32, 4096),
	}, nil
}
