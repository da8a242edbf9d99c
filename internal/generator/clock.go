package generator

import "github.com/jonboulle/clockwork"

// clock anchors the historical sampling window so tests and fixture tooling
// can freeze "now". Production code uses the real clock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
