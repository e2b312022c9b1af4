package timezone_test

import (
	"reservas/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	require.NoError(t, timezone.SetLocation("America/Panama"))
	assert.Equal(t, "America/Panama", timezone.GetLocation().String())

	assert.Error(t, timezone.SetLocation("Nowhere/Invalid"))
	assert.Equal(t, time.UTC, timezone.GetLocation())

	require.NoError(t, timezone.SetLocation(""))
	assert.Equal(t, "UTC", timezone.GetLocation().String())
}

func TestParseAndFormat(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })
	require.NoError(t, timezone.SetLocation("America/Panama"))

	parsed, err := timezone.Parse("2006-01-02", "2025-12-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 1, 5, 0, 0, 0, time.UTC), parsed.UTC())
	assert.Equal(t, "2025-12-01 00:00", timezone.Format(parsed.UTC(), "2006-01-02 15:04"))
	assert.False(t, timezone.Now().IsZero())
}
