package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-15")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), *parsed)

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ParseDate("15.08.2026")
	assert.Error(t, err)
}

func TestResolveWindowDefaults(t *testing.T) {
	from, to := ResolveWindow(nil, nil, 30)

	assert.WithinDuration(t, time.Now(), to, time.Second)
	assert.Equal(t, GetMidnight(time.Now().AddDate(0, 0, -30)), from)
}

func TestResolveWindowExplicitBounds(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	from, to := ResolveWindow(&start, &end, 30)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from, "start is truncated to midnight")
	assert.Equal(t, end, to)
}

func TestResolveWindowStartOnly(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	from, to := ResolveWindow(&start, nil, 30)

	assert.Equal(t, start, from)
	assert.WithinDuration(t, time.Now(), to, time.Second)
}
