// SPDX-License-Identifier: EPL-2.0

package raw

import "errors"

// ErrInvalidLayout indicates a Decoder without a positive sample rate or
// channel count
var ErrInvalidLayout = errors.New("raw PCM needs a positive sample rate and channel count")
