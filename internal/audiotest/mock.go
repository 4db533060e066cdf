// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates 16-bit audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) int16
	readErr      error
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource creates a mock source that generates a full scale sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) int16 {
		t := float64(sample) / float64(sampleRate)
		return int16(math.Round(math.Sin(2*math.Pi*frequency*t) * math.MaxInt16))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) int16 {
		return value
	})
}

// NewSliceSource replays interleaved samples. len(samples) should be a
// multiple of channels.
func NewSliceSource(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(sample int, channel int) int16 {
		return samples[sample*channels+channel]
	})
}

// WithReadError makes every ReadSamples call past the first frame fail with err.
func (m *MockSource) WithReadError(err error) *MockSource {
	m.readErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []int16) (int, error) {
	if m.readErr != nil && m.generated > 0 {
		return 0, m.readErr
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples && m.readErr == nil {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
