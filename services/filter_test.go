package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestResolveTimeContextFullSelection(t *testing.T) {
	sel := FilterSelection{
		Year:   intPtr(2024),
		Month:  intPtr(12),
		Day:    intPtr(15),
		Hour:   intPtr(17),
		Minute: intPtr(30),
	}

	ctx, err := ResolveTimeContext(sel, time.UTC)
	assert.NoError(t, err)
	assert.NotNil(t, ctx.Date)
	assert.NotNil(t, ctx.Instant)
	assert.Equal(t, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), *ctx.Date)
	assert.Equal(t, time.Date(2024, 12, 15, 17, 30, 0, 0, time.UTC), *ctx.Instant)
}

func TestResolveTimeContextDateOnly(t *testing.T) {
	// Jam tanpa menit tidak menghasilkan instant
	sel := FilterSelection{
		Year:  intPtr(2024),
		Month: intPtr(12),
		Day:   intPtr(15),
		Hour:  intPtr(17),
	}

	ctx, err := ResolveTimeContext(sel, time.UTC)
	assert.NoError(t, err)
	assert.NotNil(t, ctx.Date)
	assert.Nil(t, ctx.Instant)
}

func TestResolveTimeContextPartialDateIsBroadQuery(t *testing.T) {
	// Tanggal tidak lengkap = query lebar, bukan error;
	// jam+menit tanpa tanggal juga tidak menghasilkan instant
	sel := FilterSelection{
		Year:   intPtr(2024),
		Month:  intPtr(12),
		Hour:   intPtr(17),
		Minute: intPtr(30),
	}

	ctx, err := ResolveTimeContext(sel, time.UTC)
	assert.NoError(t, err)
	assert.Nil(t, ctx.Date)
	assert.Nil(t, ctx.Instant)
}

func TestResolveTimeContextEmptySelection(t *testing.T) {
	ctx, err := ResolveTimeContext(FilterSelection{}, time.UTC)
	assert.NoError(t, err)
	assert.Nil(t, ctx.Date)
	assert.Nil(t, ctx.Instant)
}

func TestResolveTimeContextInvalidDates(t *testing.T) {
	cases := []struct {
		name    string
		y, m, d int
	}{
		{"31 April", 2024, 4, 31},
		{"30 February", 2024, 2, 30},
		{"29 February non-leap", 2023, 2, 29},
		{"month 13", 2024, 13, 1},
		{"day 0", 2024, 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := FilterSelection{Year: intPtr(tc.y), Month: intPtr(tc.m), Day: intPtr(tc.d)}
			_, err := ResolveTimeContext(sel, time.UTC)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestResolveTimeContextInvalidClock(t *testing.T) {
	sel := FilterSelection{
		Year:   intPtr(2024),
		Month:  intPtr(12),
		Day:    intPtr(15),
		Hour:   intPtr(24),
		Minute: intPtr(0),
	}
	_, err := ResolveTimeContext(sel, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

// Menit di luar pilihan picker (kelipatan 15) ditolak
func TestResolveTimeContextMinuteGranularity(t *testing.T) {
	base := FilterSelection{
		Year:  intPtr(2024),
		Month: intPtr(12),
		Day:   intPtr(15),
		Hour:  intPtr(17),
	}

	for _, min := range []int{0, 15, 30, 45} {
		sel := base
		sel.Minute = intPtr(min)
		ctx, err := ResolveTimeContext(sel, time.UTC)
		assert.NoError(t, err)
		assert.NotNil(t, ctx.Instant)
	}

	for _, min := range []int{-1, 7, 31, 59, 60} {
		sel := base
		sel.Minute = intPtr(min)
		_, err := ResolveTimeContext(sel, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidTime)
	}
}
