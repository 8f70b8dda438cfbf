package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Land").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
}

func TestClock_TodayUsesClinicCalendar(t *testing.T) {
	// 03:00 UTC on Jan 11 is still Jan 10 in Lima (UTC-5).
	at := time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC)
	c := FixedClock("America/Lima", at)

	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), c.Today())
	assert.Equal(t, 22, c.Now().Hour())
}

func TestParseDateAndClock(t *testing.T) {
	d, err := ParseDate(" 2025-01-10 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10/01/2025")
	assert.Error(t, err)

	h, err := ParseClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", h)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}
