package services

import "time"

// Clock memisahkan "now" supaya mode layout tanpa jam bisa dites
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
