package helpers

import "time"

// Clock supplies the current instant. Streaks and the heatmap window always
// use it, never a caller supplied viewing date.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time { return f.At.UTC() }
