// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile indicates the stream has no Ogg Vorbis identification header
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")
