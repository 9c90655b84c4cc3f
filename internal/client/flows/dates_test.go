package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1990-05-17", "1990-05-17"},
		{" 1990-05-17 ", "1990-05-17"},
		{"1990-05-17T00:00:00.000000Z", "1990-05-17"},
		{"1990-05-17T23:30:00+03:00", "1990-05-17"},
		{"1990-05-17T10:00:00Z", "1990-05-17"},
		{"1990-05-17T10:00:00", "1990-05-17"},
		{"1990-05-17 10:00:00", "1990-05-17"},
		{"1990/05/17", "1990-05-17"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := NormalizeDate(got)
			require.NoError(t, err)
			assert.Equal(t, got, again, "idempotent")
		})
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, in := range []string{"17/05/1990", "yesterday", "1990-13-01"} {
		_, err := NormalizeDate(in)
		require.ErrorIs(t, err, ErrInvalidDate, in)
	}
}
