package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	out, err := ParseTime("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, NewDate(2024, 3, 1), out)

	out, err = ParseTime("2024-03-01T10:30:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), out)

	_, err = ParseTime("next tuesday")
	require.ErrorContains(t, err, "next tuesday")
}

func TestEndOfDay(t *testing.T) {
	require.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), EndOfDay(NewDate(2024, 3, 1)))

	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, noon, EndOfDay(noon))
}
