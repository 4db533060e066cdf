// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)

// CheckDstSize returns ErrInvalidDstSize unless n is a whole number of
// frames for the given channel count.
func CheckDstSize(n, channels int) error {
	if channels <= 0 || n%channels != 0 {
		return ErrInvalidDstSize
	}

	return nil
}
