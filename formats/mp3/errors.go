// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMp3File indicates go-mp3 could not find a decodable frame header
var ErrNotMp3File = errors.New("not an MP3 stream")
