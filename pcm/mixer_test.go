// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le(samples ...int16) []byte { return Encode(samples, false) }
func be(samples ...int16) []byte { return Encode(samples, true) }

func TestMix_LittleEndian(t *testing.T) {
	t.Parallel()

	// 0x1000 + 0x2000 -> 0x1800
	a := []byte{0x00, 0x10, 0x00, 0x10}
	b := []byte{0x00, 0x20, 0x00, 0x20}

	got, err := Mix(a, b, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x18, 0x00, 0x18}, got)
}

func TestMix_BigEndian(t *testing.T) {
	t.Parallel()

	a := []byte{0x10, 0x00, 0x10, 0x00}
	b := []byte{0x20, 0x00, 0x20, 0x00}

	got, err := Mix(a, b, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x18, 0x00, 0x18, 0x00}, got)
}

func TestMix_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int16
		want []int16
	}{
		{"positive", []int16{100, 4096}, []int16{200, 8192}, []int16{150, 6144}},
		{"floor on negative sum", []int16{-3, -1}, []int16{0, 0}, []int16{-2, -1}},
		{"max values", []int16{32767, -32768}, []int16{32767, -32768}, []int16{32767, -32768}},
		{"opposite extremes", []int16{32767, -32767}, []int16{-32768, 0}, []int16{-1, -16384}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, bigEndian := range []bool{false, true} {
				got, err := Mix(Encode(tt.a, bigEndian), Encode(tt.b, bigEndian), bigEndian)
				require.NoError(t, err)
				assert.Equal(t, Encode(tt.want, bigEndian), got, "bigEndian=%v", bigEndian)
			}
		})
	}
}

func TestMix_Empty(t *testing.T) {
	t.Parallel()

	for _, bigEndian := range []bool{false, true} {
		got, err := Mix(nil, []byte{}, bigEndian)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestMix_SilenceHalvesSamples(t *testing.T) {
	t.Parallel()

	a := []int16{-3, 3, -1, 1, 32767, -32768, 0, -32767}
	want := []int16{-2, 1, -1, 0, 16383, -16384, 0, -16384}

	got, err := Mix(le(a...), Silence(len(a)*2), false)
	require.NoError(t, err)
	assert.Equal(t, le(want...), got)
}

func TestMix_UnequalLengths(t *testing.T) {
	t.Parallel()

	a := le(100, -3, 7, -32768)
	b := le(200, 50)

	got, err := Mix(a, b, false)
	require.NoError(t, err)
	assert.Equal(t, le(150, 23, 3, -16384), got)

	// Padding happens on bytes, before decoding.
	got, err = Mix([]byte{0x10, 0x00, 0x20}, []byte{0x30, 0x00, 0x40, 0x00}, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x00, 0x30, 0x00}, got)
}

func TestMix_OutputLength(t *testing.T) {
	t.Parallel()

	for _, tc := range [][2]int{{0, 0}, {0, 4}, {4, 4}, {8, 4}, {3, 8}, {16, 13}} {
		got, err := Mix(make([]byte, tc[0]), make([]byte, tc[1]), false)
		require.NoError(t, err, "lengths %v", tc)
		assert.Len(t, got, max(tc[0], tc[1]), "lengths %v", tc)
	}
}

func TestMix_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2][]int16{
		{{1, 2, 3, 4}, {-5, -6, -7, -8}},
		{{32767, -32768}, {-1, 1, 999, -999}},
		{{-3, 5}, {0, 0}},
	}

	for _, p := range pairs {
		for _, bigEndian := range []bool{false, true} {
			a, b := Encode(p[0], bigEndian), Encode(p[1], bigEndian)
			ab, err := Mix(a, b, bigEndian)
			require.NoError(t, err)
			ba, err := Mix(b, a, bigEndian)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
		}
	}
}

func TestMix_InvalidLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
	}{
		{"three bytes each", 3, 3},
		{"single sample", 2, 2},
		{"odd sample count after padding", 6, 2},
		{"dangling byte", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Mix(make([]byte, tt.a), make([]byte, tt.b), true)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrInvalidLength)

			var lenErr *InvalidLengthError
			require.ErrorAs(t, err, &lenErr)
			assert.Equal(t, max(tt.a, tt.b), lenErr.Length)
		})
	}
}

func TestMix_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := be(1000, -1000, 5, 6)
	b := be(-7, 8)
	aCopy := bytes.Clone(a)
	bCopy := bytes.Clone(b)

	_, err := Mix(a, b, true)
	require.NoError(t, err)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
	assert.Len(t, b, 4, "shorter input must not be grown")
}

func TestMix_Concurrent(t *testing.T) {
	t.Parallel()

	a := le(1, 2, 3, 4, 5, 6, 7, 8)
	b := le(-8, -7, -6, -5)
	want, err := Mix(a, b, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Mix(a, b, false)
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}

func TestMixAll(t *testing.T) {
	t.Parallel()

	got, err := MixAll(false, le(100, 100), le(300, 300), le(1000, -1000))
	require.NoError(t, err)
	assert.Equal(t, le(600, -400), got)
}

func TestMixAll_NoPayloads(t *testing.T) {
	t.Parallel()

	_, err := MixAll(true)
	assert.ErrorIs(t, err, ErrNoPayloads)
}

func TestMixAll_SinglePayload(t *testing.T) {
	t.Parallel()

	p := le(1, 2)
	got, err := MixAll(false, p)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	got[0] = 0xAA
	assert.Equal(t, byte(0x01), p[0], "result must be a copy")

	_, err = MixAll(false, []byte{1, 2})
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestMixAll_InvalidPayload(t *testing.T) {
	t.Parallel()

	_, err := MixAll(false, le(1, 2), le(3, 4), make([]byte, 6))
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), "payload 2")
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestSilence(t *testing.T) {
	t.Parallel()

	s := Silence(8)
	assert.Equal(t, make([]byte, 8), s)
	assert.Empty(t, Silence(-1))
}

func BenchmarkMix(b *testing.B) {
	x := make([]byte, 4096)
	y := make([]byte, 4096)
	for i := range x {
		x[i] = byte(i)
		y[i] = byte(i * 3)
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Mix(x, y, false)
	}
}

func BenchmarkMix_Unequal(b *testing.B) {
	x := make([]byte, 4096)
	y := make([]byte, 1024)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Mix(x, y, true)
	}
}
