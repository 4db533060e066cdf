// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("16-bit PCM buffer must hold an even number of samples")
	ErrNoPayloads    = errors.New("no payloads to mix")
)

// InvalidLengthError reports a buffer whose byte length does not decode into
// an even number of 16-bit samples.
type InvalidLengthError struct {
	Length int // byte length after padding
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: %d bytes (%d samples)", ErrInvalidLength, e.Length, e.Length/BytesPerSample)
}

// Is makes errors.Is(err, ErrInvalidLength) hold for every InvalidLengthError.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

func checkLength(n int) error {
	if n%(2*BytesPerSample) != 0 {
		return &InvalidLengthError{Length: n}
	}

	return nil
}
