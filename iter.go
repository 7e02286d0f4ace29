// iter.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sounding

import (
	"iter"

	"github.com/skewt/sounding/optval"
)

// Merged iteration: BottomUp yields rows from the highest pressure (lowest
// altitude) upward with the surface row spliced in at its pressure rank;
// TopDown is the exact reverse of the same sequence. Both are restartable
// (each call builds a fresh sequence), finite (at most levels+1 rows), and
// never mutate the sounding, so any number of concurrent iterations are
// safe. Iteration never fails: absent data shows up as missing values in
// rows, and a sounding with no levels and no surface pressure yields an
// empty sequence.

// surfaceSlot marks the surface row in a merge order.
const surfaceSlot = -1

// BottomUp returns the merged rows from the surface upward.
func (s *Sounding) BottomUp() iter.Seq[DataRow] {
	return func(yield func(DataRow) bool) {
		for _, slot := range s.mergeOrder() {
			if !yield(s.rowAt(slot)) {
				return
			}
		}
	}
}

// TopDown returns the merged rows from the top of the profile down to the
// surface.
func (s *Sounding) TopDown() iter.Seq[DataRow] {
	return func(yield func(DataRow) bool) {
		order := s.mergeOrder()
		for i := len(order) - 1; i >= 0; i-- {
			if !yield(s.rowAt(order[i])) {
				return
			}
		}
	}
}

func (s *Sounding) rowAt(slot int) DataRow {
	if slot == surfaceSlot {
		return s.SurfaceRow()
	}
	row, _ := s.Row(slot)
	return row
}

// pressureAt returns the stored pressure at the given level, missing if no
// pressure profile was set.
func (s *Sounding) pressureAt(idx int) Value {
	if p := s.profiles[Pressure]; p != nil {
		return p[idx]
	}
	return optval.None[float64]()
}

// bottomFirst reports whether storage index 0 is the lowest level, i.e.
// pressure decreases as the index grows. Profiles are conventionally
// stored that way; a top-first profile is detected from its first and last
// present pressures and walked in reverse. With fewer than two present
// pressures the question is moot and stored order is taken as bottom-first.
func (s *Sounding) bottomFirst() bool {
	var first, last Value
	for _, p := range s.profiles[Pressure] {
		if p.IsSome() {
			if first.IsNone() {
				first = p
			}
			last = p
		}
	}

	ascending, ok := optval.Less(first, last)
	return !ok || !ascending
}

// mergeOrder computes the bottom-up emission order: profile storage
// indexes from the lowest level to the highest, with surfaceSlot spliced
// in immediately before the first level whose present pressure is
// strictly below the surface pressure. Levels with missing pressure keep
// their stored position and never take part in the comparison — lenient,
// but merged order is only meaningful for monotonic input anyway. Exact
// pressure ties follow the sounding's TiePolicy. Without a surface
// pressure there is nothing to splice and the profile is emitted alone.
func (s *Sounding) mergeOrder() []int {
	bottomUp := make([]int, 0, s.levels+1)
	if s.bottomFirst() {
		for i := range s.levels {
			bottomUp = append(bottomUp, i)
		}
	} else {
		for i := s.levels - 1; i >= 0; i-- {
			bottomUp = append(bottomUp, i)
		}
	}

	surfaceP, ok := s.surface[StationPressure].Get()
	if !ok {
		return bottomUp
	}

	order := make([]int, 0, len(bottomUp)+1)
	spliced := false
	for _, idx := range bottomUp {
		p, ok := s.pressureAt(idx).Get()
		if !spliced && ok {
			switch {
			case p == surfaceP:
				order = append(order, surfaceSlot)
				spliced = true
				if s.tiePolicy == TieSurfaceWins {
					continue // duplicate level superseded by surface data
				}
			case p < surfaceP:
				order = append(order, surfaceSlot)
				spliced = true
			}
		}
		order = append(order, idx)
	}
	if !spliced {
		// Every level sits at or below the surface pressure; the surface
		// row tops off the sequence.
		order = append(order, surfaceSlot)
	}
	return order
}
