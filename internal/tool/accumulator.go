package tool

import (
	"math"
	"time"
)

// placeWeights are the seconds contributed by one unit in each entry slot:
// seconds, tens of seconds, minutes, tens of minutes, hours, tens of hours.
var placeWeights = [...]uint64{1, 10, 60, 600, 3600, 36000}

// Accumulator converts successive single-digit inputs into a duration.
//
// Each digit is weighted by the current slot and added to the target; the
// slot then advances and wraps after the sixth digit. Arithmetic is unsigned
// and wraps on overflow.
type Accumulator struct {
	seconds uint64
	slot    int
}

// Feed adds digit at the current place value and advances the slot.
// Values above 9 are ignored.
func (a *Accumulator) Feed(digit uint8) {
	if digit > 9 {
		return
	}
	a.seconds += uint64(digit) * placeWeights[a.slot]
	a.slot = (a.slot + 1) % len(placeWeights)
}

// Reset clears the target and returns to the first slot.
func (a *Accumulator) Reset() {
	a.seconds = 0
	a.slot = 0
}

// Slot is the index of the place value the next digit will fill.
func (a *Accumulator) Slot() int {
	return a.slot
}

// IsZero reports whether no time has been entered.
func (a *Accumulator) IsZero() bool {
	return a.seconds == 0
}

// Target is the entered duration, saturating at the largest time.Duration.
func (a *Accumulator) Target() time.Duration {
	if a.seconds > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(a.seconds) * time.Second
}
