// SPDX-License-Identifier: EPL-2.0

package pcm

import "encoding/binary"

// BytesPerSample is the width of one 16-bit PCM sample.
const BytesPerSample = 2

// Order returns the byte order selected by bigEndian.
func Order(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// DecodeInto converts as many whole samples from src as fit into dst and
// returns the number written. A trailing odd byte in src is ignored.
// No length validation is done; streaming decoders use it on partial reads.
func DecodeInto(dst []int16, src []byte, order binary.ByteOrder) int {
	n := min(len(dst), len(src)/BytesPerSample)
	for i := range n {
		dst[i] = int16(order.Uint16(src[i*BytesPerSample:]))
	}

	return n
}

// EncodeInto writes as many samples from src as fit into dst and returns
// the number of samples written.
func EncodeInto(dst []byte, src []int16, order binary.ByteOrder) int {
	n := min(len(src), len(dst)/BytesPerSample)
	for i := range n {
		order.PutUint16(dst[i*BytesPerSample:], uint16(src[i]))
	}

	return n
}

// Decode interprets buf as signed 16-bit samples in the selected byte order.
//
// len(buf) must be a multiple of 4, i.e. the buffer must hold an even number
// of whole samples; otherwise an *InvalidLengthError is returned and no
// samples are produced.
func Decode(buf []byte, bigEndian bool) ([]int16, error) {
	if err := checkLength(len(buf)); err != nil {
		return nil, err
	}

	samples := make([]int16, len(buf)/BytesPerSample)
	DecodeInto(samples, buf, Order(bigEndian))

	return samples, nil
}

// Encode converts samples to bytes in the selected byte order. The result is
// always 2*len(samples) bytes long.
func Encode(samples []int16, bigEndian bool) []byte {
	buf := make([]byte, len(samples)*BytesPerSample)
	EncodeInto(buf, samples, Order(bigEndian))

	return buf
}
