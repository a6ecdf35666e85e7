// Package core_test verifies timestamp parsing and normalization rules.
package core_test

import (
	"testing"
	"time"

	"github.com/kaverin/avipath/core"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_Plain(t *testing.T) {
	got, err := core.ParseTimestamp("2024-01-14 08:30:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 14, 8, 30, 0, 0, time.UTC), got)
}

// A 24:00:00 clock on date D must normalize to midnight on D+1.
func TestParseTimestamp_EndOfDay(t *testing.T) {
	got, err := core.ParseTimestamp("2024-01-14 24:00:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseTimestamp_EndOfDayAcrossMonth(t *testing.T) {
	got, err := core.ParseTimestamp("2024-01-31 24:00:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseTimestamp_Malformed(t *testing.T) {
	for _, s := range []string{"", "2024-01-14", "14/01/2024 08:00:00", "garbage 24:00:00"} {
		_, err := core.ParseTimestamp(s)
		require.ErrorIs(t, err, core.ErrBadTimestamp, "input %q", s)
	}
}
