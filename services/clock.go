package services

import "time"

// Clock supplies the current date so status derivation and credit-note
// issuance stay deterministic under test.
type Clock interface {
	Today() time.Time
}

type SystemClock struct{}

func (SystemClock) Today() time.Time {
	return time.Now().UTC()
}
