// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/pcmmix/audio"
)

const wavFormatPCM = 1

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
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

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: 16,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading wav samples: %w", err)
		}
		return 0, io.EOF
	}

	// 16-bit data, so every value already fits.
	for i := range n {
		dst[i] = int16(s.intBuf.Data[i])
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("reading wav samples: %w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, errors.Join(ErrNotWavFile, err)
	}

	// go-audio does not check the WAVE form type; a RIFF file without a
	// fmt chunk leaves NumChans at zero.
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != wavFormatPCM || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	if dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, errors.Join(ErrUnsupportedWavChunks, err)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}
