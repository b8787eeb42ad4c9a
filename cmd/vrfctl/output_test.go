package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short ascii untouched", "OK 204", 10, "OK 204"},
		{"long ascii", "API request failed with code 500", 10, "API req..."},
		{"multibyte untouched when it fits", "réseau privé", 12, "réseau privé"},
		{"multibyte cut on rune boundary", "réseau privé d'entreprise", 10, "réseau ..."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := truncateString(tt.in, tt.maxLen)
			require.Equal(t, tt.want, got)
			require.True(t, utf8.ValidString(got))
		})
	}
}
