// SPDX-License-Identifier: EPL-2.0

// Package raw decodes headerless 16-bit PCM streams, the format pcm.Mix
// consumes and produces. Sample rate, channel count and byte order are not
// stored in the stream and come from the Decoder fields.
package raw
