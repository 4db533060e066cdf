// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved signed 16-bit samples.
	// Returns number of int16 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []int16) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive and a leading dot is ignored, so a file
// extension can be used directly.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	return formats
}
