/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package rangeindex provides a narrowest-match interval index over the
// uint32 code space. It is the numeric counterpart of a longest-prefix
// match: when several registered ranges contain a code, the narrowest one
// wins, so a more specific rule always beats a broader one.
package rangeindex

import (
	"errors"
	"strconv"
)

// Index maps inclusive [lo, hi] uint32 ranges to values of type T.
// Lookups return the value of the narrowest range containing the probe;
// ties on width are broken by the lower range start, which makes
// resolution fully deterministic regardless of insertion order.
//
// An Index is not safe for concurrent mutation; build it once, then share
// it freely for reads.
type Index[T any] struct {
	entries []entry[T]
}

type entry[T any] struct {
	lo, hi uint32
	val    T
	// pattern is the canonical "lo-hi" (or "lo" for single-value ranges)
	// form, built once at insert time so Explain-style lookups don't
	// allocate on the hot path.
	pattern string
}

var (
	// ErrInvalidRange is returned when inserting a range with lo > hi, or
	// a range containing 0. Zero is the success sentinel and is never
	// subject to mapping rules.
	ErrInvalidRange = errors.New("rangeindex: invalid range")
)

// New creates an empty index ready for inserts.
func New[T any]() *Index[T] {
	return &Index[T]{}
}

// Insert registers the inclusive range [lo, hi] with val.
//
// Rules:
//   - lo must not exceed hi;
//   - lo must be nonzero (ranges never cover the success sentinel).
//
// Overlapping ranges are allowed; Match resolves them by narrowest-wins.
// Returns ErrInvalidRange on malformed input.
func (x *Index[T]) Insert(lo, hi uint32, val T) error {
	if lo == 0 || lo > hi {
		return ErrInvalidRange
	}
	x.entries = append(x.entries, entry[T]{
		lo:      lo,
		hi:      hi,
		val:     val,
		pattern: formatRange(lo, hi),
	})
	return nil
}

// Match finds the best (narrowest) range containing v.
// It returns (value, true) on success, or the zero value and false when no
// range contains v.
func (x *Index[T]) Match(v uint32) (T, bool) {
	val, ok, _ := x.MatchWithPattern(v)
	return val, ok
}

// MatchWithPattern is Match plus the canonical "lo-hi" form of the winning
// rule, for diagnostics (Explain).
func (x *Index[T]) MatchWithPattern(v uint32) (T, bool, string) {
	var (
		zero      T
		bestVal   T
		bestPat   string
		bestWidth uint64
		bestLo    uint32
		found     bool
	)
	for i := range x.entries {
		e := &x.entries[i]
		if v < e.lo || v > e.hi {
			continue
		}
		width := uint64(e.hi) - uint64(e.lo)
		switch {
		case !found,
			width < bestWidth,
			width == bestWidth && e.lo < bestLo:
			bestVal = e.val
			bestPat = e.pattern
			bestWidth = width
			bestLo = e.lo
			found = true
		}
	}
	if !found {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// Len returns the number of registered ranges.
func (x *Index[T]) Len() int { return len(x.entries) }

// formatRange builds the canonical pattern string for a range.
// Single-value ranges collapse to the bare number.
func formatRange(lo, hi uint32) string {
	if lo == hi {
		return strconv.FormatUint(uint64(lo), 10)
	}
	return strconv.FormatUint(uint64(lo), 10) + "-" + strconv.FormatUint(uint64(hi), 10)
}
