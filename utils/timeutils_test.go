package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationWindowBoundaries(t *testing.T) {
	loc := time.UTC
	start, err := ParseTimeSlot("2024-12-15 17:00", loc)
	assert.NoError(t, err)

	end := ReservationEnd(start)
	assert.Equal(t, 90*time.Minute, end.Sub(start))

	// Ongoing tepat di awal window
	assert.True(t, IsOngoing(start, end, start))
	// Masih ongoing satu menit sebelum selesai
	assert.True(t, IsOngoing(start, end, start.Add(89*time.Minute)))
	// End eksklusif: tepat 90 menit sudah bukan ongoing
	assert.False(t, IsOngoing(start, end, start.Add(90*time.Minute)))
	// Sebelum mulai bukan ongoing
	assert.False(t, IsOngoing(start, end, start.Add(-time.Second)))
}

func TestSoonThresholdInclusive(t *testing.T) {
	at := time.Date(2024, 12, 15, 17, 30, 0, 0, time.UTC)

	// Tepat 30 menit ke depan masih soon
	assert.True(t, IsSoon(at.Add(30*time.Minute), at))
	// 30 menit 1 detik sudah bukan
	assert.False(t, IsSoon(at.Add(30*time.Minute+time.Second), at))
	// Sudah mulai bukan soon
	assert.False(t, IsSoon(at, at))
	assert.False(t, IsSoon(at.Add(-time.Minute), at))
}

func TestParseTimeSlotRejectsGarbage(t *testing.T) {
	_, err := ParseTimeSlot("not-a-slot", time.UTC)
	assert.Error(t, err)

	_, err = ParseTimeSlot("2024-13-40 25:99", time.UTC)
	assert.Error(t, err)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 12, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2024, 12, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}
