// validate.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sounding

import (
	"errors"
	"fmt"

	"github.com/skewt/sounding/optval"
)

// Validate checks the sounding for logical consistency and returns all
// problems found, joined into one error. Missing data is never a problem —
// incomplete soundings are the normal case — but data that is present must
// make physical sense: profile lengths must agree, present pressures must
// be monotonic along storage order, the dew point cannot exceed the
// temperature, the wet bulb must sit between the two, and a present Haines
// index must be in [2, 6].
func (s *Sounding) Validate() error {
	var errs []error

	for k := range ProfileKind(NumProfileKinds) {
		if p := s.profiles[k]; p != nil && len(p) != s.levels {
			errs = append(errs, fmt.Errorf("%s profile has %d levels, sounding has %d",
				k, len(p), s.levels))
		}
	}

	if !pressuresMonotonic(s.profiles[Pressure]) {
		errs = append(errs, errors.New("pressure profile is not monotonic"))
	}

	temp := s.profiles[Temperature]
	dew := s.profiles[DewPoint]
	wet := s.profiles[WetBulb]
	for i := range s.levels {
		t := profileAt(temp, i)
		d := profileAt(dew, i)
		w := profileAt(wet, i)

		if less, ok := optval.Less(t, d); ok && less {
			errs = append(errs, fmt.Errorf("level %d: dew point %s exceeds temperature %s", i, d, t))
		}
		if less, ok := optval.Less(w, d); ok && less {
			errs = append(errs, fmt.Errorf("level %d: wet bulb %s below dew point %s", i, w, d))
		}
		if less, ok := optval.Less(t, w); ok && less {
			errs = append(errs, fmt.Errorf("level %d: wet bulb %s exceeds temperature %s", i, w, t))
		}
	}

	if lt, ok := s.leadTime.Get(); ok && lt < 0 {
		errs = append(errs, fmt.Errorf("negative lead time %d", lt))
	}

	if h, ok := s.indexes[Haines].Get(); ok && (h < 2 || h > 6) {
		errs = append(errs, fmt.Errorf("Haines index %g outside [2, 6]", h))
	}

	return errors.Join(errs...)
}

func profileAt(p []Value, i int) Value {
	if i >= len(p) {
		return optval.None[float64]()
	}
	return p[i]
}

// pressuresMonotonic reports whether the present pressures run strictly in
// one direction along storage order. Missing entries are skipped.
func pressuresMonotonic(pressures []Value) bool {
	var present []float64
	for _, p := range pressures {
		if v, ok := p.Get(); ok {
			present = append(present, v)
		}
	}
	if len(present) < 3 {
		return true
	}

	descending := present[0] > present[1]
	for i := 1; i < len(present); i++ {
		if descending && present[i] >= present[i-1] {
			return false
		}
		if !descending && present[i] <= present[i-1] {
			return false
		}
	}
	return true
}
