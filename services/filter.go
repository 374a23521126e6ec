package services

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date selection")
	ErrInvalidTime = errors.New("invalid time selection")
)

// FilterSelection adalah nilai filter dari layar reservasi. Field pointer
// yang nil berarti "tidak dipilih". Nilainya immutable untuk core; layar
// membuat ulang selection setiap interaksi.
type FilterSelection struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
	Status string // "" berarti semua status
	Table  *int
}

// TimeContext is the resolved form of a FilterSelection: an optional
// calendar date (midnight in the restaurant timezone) and an optional
// exact instant within that date.
type TimeContext struct {
	Date    *time.Time
	Instant *time.Time
}

// ResolveTimeContext combines the discrete picker values into a TimeContext.
//
// The date is set only when year, month and day are all selected. The
// instant is set only when the date is set and both hour and minute are
// selected; a time without a date is meaningless and yields no instant.
// Partial selections are a valid broader-query mode, not an error.
// A day that does not exist in the selected month returns ErrInvalidDate.
// The minute picker only offers quarter hours, so any minute outside
// {0, 15, 30, 45} returns ErrInvalidTime.
func ResolveTimeContext(sel FilterSelection, loc *time.Location) (TimeContext, error) {
	var ctx TimeContext

	if sel.Year == nil || sel.Month == nil || sel.Day == nil {
		return ctx, nil
	}

	y, m, d := *sel.Year, *sel.Month, *sel.Day
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return ctx, ErrInvalidDate
	}
	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	// time.Date menormalisasi 31 April menjadi 1 Mei; tolak kalau bergeser
	if date.Year() != y || date.Month() != time.Month(m) || date.Day() != d {
		return ctx, ErrInvalidDate
	}
	ctx.Date = &date

	if sel.Hour == nil || sel.Minute == nil {
		return ctx, nil
	}
	h, min := *sel.Hour, *sel.Minute
	if h < 0 || h > 23 {
		return ctx, ErrInvalidTime
	}
	// Picker menit hanya punya kelipatan 15
	if min < 0 || min > 45 || min%15 != 0 {
		return ctx, ErrInvalidTime
	}
	instant := time.Date(y, time.Month(m), d, h, min, 0, 0, loc)
	ctx.Instant = &instant

	return ctx, nil
}
