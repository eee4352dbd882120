// Package timeutil provides utility functions for working with time values
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
// Negative values are treated as zero.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// Clock formats a seconds value as "MM:SS".
func Clock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// Seconds converts a duration to whole seconds, rounding to the nearest one.
func Seconds(d time.Duration) int {
	return Round(d.Seconds())
}
