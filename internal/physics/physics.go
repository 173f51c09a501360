// Package physics provides the threshold and range checks the game is built on.
package physics

import "golang.org/x/exp/constraints"

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CrossedBelow reports whether a value moving from prev to cur passed
// downward through threshold during this step. A step landing exactly on the
// threshold does not count; the step leaving it does.
func CrossedBelow[T constraints.Float](prev, cur, threshold T) bool {
	return cur < threshold && prev >= threshold
}

// OutsideBand reports whether v lies strictly outside [lo*ref, hi*ref].
// Values exactly on either edge are inside.
func OutsideBand[T constraints.Float](v, ref, lo, hi T) bool {
	return v > hi*ref || v < lo*ref
}
