// SPDX-License-Identifier: EPL-2.0

package pcmmix

import "errors"

var (
	// ErrFormatMismatch indicates two sources differ in sample rate or channel count
	ErrFormatMismatch = errors.New("sources differ in sample rate or channel count")

	// ErrInvalidBufferSize indicates a non-positive read buffer size
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)
