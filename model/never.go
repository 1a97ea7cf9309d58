package model

import "math"

// Never is the sentinel value for time-since-event columns that have
// not yet occurred. The source system uses NaN; this implementation
// uses +Inf instead, because +Inf composes correctly under ordinary
// arithmetic (time_since_event + cycle_length stays +Inf) and under
// comparisons (x <= threshold is false for +Inf, matching "has not
// happened" for every finite threshold), whereas NaN fails every
// comparison including against itself and would force an IsNever
// check before any arithmetic on the field.
var Never = math.Inf(1)

// IsNever reports whether x is the "never happened" sentinel.
func IsNever(x float64) bool {
	return math.IsInf(x, 1)
}
