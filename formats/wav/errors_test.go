// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
		{"ErrUnsupportedWavChunks", ErrUnsupportedWavChunks, "unsupported WAV chunks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}

			wrappedErr := errors.Join(tt.err, errors.New("additional context"))
			if !errors.Is(wrappedErr, tt.err) {
				t.Errorf("errors.Is(wrappedErr, %s) = false, want true", tt.name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrOnlyPCM16bitSupported,
		ErrUnsupportedWavChunks,
	}

	for i := range allErrors {
		for j := range allErrors {
			if i != j && errors.Is(allErrors[i], allErrors[j]) {
				t.Errorf("errors[%d] matches errors[%d]", i, j)
			}
		}
	}
}
