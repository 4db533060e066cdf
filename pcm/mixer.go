// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// Mix combines two 16-bit PCM buffers by averaging corresponding samples.
//
// The shorter buffer is treated as if it were right-padded with zero bytes
// (silence) up to the length of the longer one; neither input is modified.
// bigEndian selects the byte order of both inputs and of the result.
//
// Each output sample is (a+b)>>1 computed in 32 bits, so the mean is rounded
// toward negative infinity. The result is not clamped: the mean of two
// 16-bit values always fits in 16 bits.
//
// The padded length must be a multiple of 4 bytes, otherwise an
// *InvalidLengthError is returned. The output has the padded length.
func Mix(a, b []byte, bigEndian bool) ([]byte, error) {
	length := max(len(a), len(b))
	if err := checkLength(length); err != nil {
		return nil, err
	}

	aSamples, err := Decode(pad(a, length), bigEndian)
	if err != nil {
		return nil, err
	}

	bSamples, err := Decode(pad(b, length), bigEndian)
	if err != nil {
		return nil, err
	}

	mixed := make([]int16, len(aSamples))
	for i := range mixed {
		sum := int32(aSamples[i]) + int32(bSamples[i])
		mixed[i] = int16(uint16((sum >> 1) & 0xFFFF))
	}

	return Encode(mixed, bigEndian), nil
}

// MixAll folds Mix over payloads from left to right:
// Mix(Mix(Mix(p0, p1), p2), ...). Later payloads therefore carry more weight
// than earlier ones, the same as mixing participants one by one as they
// arrive.
//
// A single payload is validated and returned as a copy.
func MixAll(bigEndian bool, payloads ...[]byte) ([]byte, error) {
	if len(payloads) == 0 {
		return nil, ErrNoPayloads
	}

	if len(payloads) == 1 {
		if err := checkLength(len(payloads[0])); err != nil {
			return nil, err
		}
		return append([]byte{}, payloads[0]...), nil
	}

	acc := payloads[0]
	for i, p := range payloads[1:] {
		var err error
		acc, err = Mix(acc, p, bigEndian)
		if err != nil {
			return nil, fmt.Errorf("mixing payload %d: %w", i+1, err)
		}
	}

	return acc, nil
}

// Silence returns n zero bytes, which decode to n/2 silent samples.
func Silence(n int) []byte {
	return make([]byte, max(n, 0))
}

func pad(buf []byte, length int) []byte {
	if len(buf) == length {
		return buf
	}

	padded := make([]byte, length)
	copy(padded, buf)

	return padded
}
