package utils

import (
	"time"
)

// Semua perhitungan waktu memakai satu zona waktu restoran yang tetap,
// bukan zona waktu host, supaya tidak ada selisih DST antar mesin.
const (
	DefaultTimezone = "Europe/Sofia"
	TimeSlotFormat  = "2006-01-02 15:04"

	// ReservationDuration is how long a single reservation blocks a table.
	ReservationDuration = 90 * time.Minute

	// SoonThreshold is the look-ahead window for the "soon occupied" table state.
	SoonThreshold = 30 * time.Minute
)

// ParseTimeSlot parses a stored "YYYY-MM-DD HH:MM" slot as wall-clock time
// in the given restaurant timezone.
func ParseTimeSlot(slot string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(TimeSlotFormat, slot, loc)
}

// FormatTimeSlot renders a start time back to the stored slot format.
func FormatTimeSlot(t time.Time) string {
	return t.Format(TimeSlotFormat)
}

// ReservationEnd returns the exclusive end of the occupied window.
func ReservationEnd(start time.Time) time.Time {
	return start.Add(ReservationDuration)
}

// IsOngoing reports whether a reservation window [start, end) contains at.
// The end is exclusive: a reservation that ends exactly at the checked
// instant no longer occupies the table.
func IsOngoing(start, end, at time.Time) bool {
	return !start.After(at) && at.Before(end)
}

// IsSoon reports whether a reservation starts within SoonThreshold after at.
// The upper bound is inclusive: a start exactly 30 minutes away still counts.
func IsSoon(start, at time.Time) bool {
	limit := at.Add(SoonThreshold)
	return at.Before(start) && !start.After(limit)
}

// SameDate compares only the calendar date of two instants.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
