package domain

import "github.com/jonboulle/clockwork"

// clock feeds ObservedAt and ProcessedAt stamps during transformation.
// It is package-level so repeated runs over the same batch can be pinned
// to the same instant, which keeps PIREP IDs and /TM groups reproducible.
var clock = clockwork.NewRealClock()

// SetClock replaces the transformation time source, typically with a
// clockwork fake frozen at a known instant. Passing nil restores the
// real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
