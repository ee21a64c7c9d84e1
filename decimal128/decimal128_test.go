package decimal128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnscaled_RoundTripsWithString(t *testing.T) {
	cases := []struct {
		v     int64
		scale int
	}{
		{1234, 2},
		{-50, 2},
		{0, 2},
		{12345, 0},
		{-1, 5},
	}
	for _, c := range cases {
		d := FromInt64(c.v)
		s := d.String(c.scale)
		got, err := ParseUnscaled(s, c.scale)
		require.NoError(t, err)
		require.Equal(t, d, got, "round trip of %q at scale %d", s, c.scale)
	}
}

func TestParseUnscaled_RejectsWrongScale(t *testing.T) {
	_, err := ParseUnscaled("12.34", 3)
	require.Error(t, err)
}

func TestParseUnscaled_RejectsNonDigit(t *testing.T) {
	_, err := ParseUnscaled("1x.34", 2)
	require.Error(t, err)
}
