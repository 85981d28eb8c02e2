// File: intx.go
// Title: Integer Iteration Helpers
// Description: Repeats or iterates a caller-supplied function over integer
//              ranges. Bounds are inclusive on both ends and iteration never
//              overflows at the limits of the integer type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with Times, UpTo and DownTo

package intx

import "iter"

// Integer is satisfied by every built-in integer type
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Times calls fn n times. Nothing happens for n <= 0.
func Times[T Integer](n T, fn func()) {
	for i := T(0); i < n; i++ {
		fn()
	}
}

// UpTo calls fn for every value from start to end inclusive, counting up.
// Nothing happens when end < start.
func UpTo[T Integer](start, end T, fn func(T)) {
	for i := range UpToSeq(start, end) {
		fn(i)
	}
}

// DownTo calls fn for every value from start down to end inclusive.
// Nothing happens when end > start.
func DownTo[T Integer](start, end T, fn func(T)) {
	for i := range DownToSeq(start, end) {
		fn(i)
	}
}

// UpToSeq returns an iterator over start, start+1, ..., end
func UpToSeq[T Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if end < start {
			return
		}
		for i := start; ; i++ {
			if !yield(i) || i == end {
				return
			}
		}
	}
}

// DownToSeq returns an iterator over start, start-1, ..., end
func DownToSeq[T Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if end > start {
			return
		}
		for i := start; ; i-- {
			if !yield(i) || i == end {
				return
			}
		}
	}
}
