// sounding.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sounding represents a single atmospheric sounding with pressure
// as the vertical coordinate: parallel per-level profiles, a separate
// near-surface record, and station/time metadata. It is the common data
// type for tools that store, plot, or analyze sounding data; those tools
// build a Sounding through the setters and consume it through the
// accessors and the ordered BottomUp/TopDown iteration, which splices the
// surface observation into the profile at its proper pressure rank.
package sounding

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/brunoga/deep"
	"github.com/skewt/sounding/optval"
)

// Value is an optional float64, the type of every measurement in a
// sounding.
type Value = optval.Value[float64]

// ErrLengthMismatch is returned by SetProfile when a profile's length
// disagrees with the sounding's established level count.
var ErrLengthMismatch = errors.New("profile length does not match sounding level count")

// TiePolicy selects what merged iteration emits when a profile level's
// pressure exactly equals the surface pressure.
type TiePolicy int

const (
	// TieSurfaceWins drops the duplicate profile level and keeps the
	// surface row, treating surface instruments as the better source at
	// that pressure. This is the default.
	TieSurfaceWins TiePolicy = iota
	// TieKeepBoth emits the surface row followed by the profile level.
	TieKeepBoth
)

// Sounding is a vertical profile of atmospheric measurements at one time
// and place. Profiles are parallel sequences indexed by level; index i in
// every profile refers to the same vertical level. A Sounding owns its
// data: accessors hand out copies, and nothing shares state between
// instances.
//
// Mutation through the setters is single-writer; a Sounding handed off to
// consumers is read-only and any number of concurrent iterations over it
// are safe.
type Sounding struct {
	station   StationInfo
	validTime time.Time // UTC; zero means unset
	leadTime  optval.Value[int]
	tiePolicy TiePolicy

	// Level count established by the first SetProfile call.
	levels    int
	levelsSet bool

	profiles [NumProfileKinds][]Value
	surface  [NumSurfaceKinds]Value
	indexes  [NumIndexKinds]Value
}

// New returns an empty Sounding, to be populated through the setters.
func New() *Sounding {
	return &Sounding{}
}

// SetProfile stores the per-level sequence for the given kind, replacing
// any previous one. The first profile set establishes the sounding's level
// count; every later profile must match it or the call fails with
// ErrLengthMismatch and leaves the sounding unchanged. There is no
// deletion: overwrite with missing values instead.
func (s *Sounding) SetProfile(kind ProfileKind, values []Value) error {
	if s.levelsSet && len(values) != s.levels {
		return fmt.Errorf("%w: %s has %d levels, sounding has %d",
			ErrLengthMismatch, kind, len(values), s.levels)
	}

	s.profiles[kind] = slices.Clone(values)
	if !s.levelsSet {
		s.levels = len(values)
		s.levelsSet = true
	}
	return nil
}

// Profile returns a copy of the stored sequence for the given kind, or nil
// if that kind was never set. nil is the consistent "absent" signal; a set
// profile full of missing values is a different thing.
func (s *Sounding) Profile(kind ProfileKind) []Value {
	return slices.Clone(s.profiles[kind])
}

// SetSurfaceValue stores a single near-surface value. Surface values carry
// no length constraint, so this always succeeds.
func (s *Sounding) SetSurfaceValue(kind SurfaceKind, v Value) *Sounding {
	s.surface[kind] = v
	return s
}

// SurfaceValue returns the stored near-surface value for the given kind.
func (s *Sounding) SurfaceValue(kind SurfaceKind) Value {
	return s.surface[kind]
}

// SetIndex stores an externally computed stability index value.
func (s *Sounding) SetIndex(kind IndexKind, v Value) *Sounding {
	s.indexes[kind] = v
	return s
}

// Index returns the stored value for the given stability index.
func (s *Sounding) Index(kind IndexKind) Value {
	return s.indexes[kind]
}

// SetStationInfo replaces the station metadata as a whole.
func (s *Sounding) SetStationInfo(info StationInfo) *Sounding {
	s.station = info
	return s
}

// StationInfo returns the station metadata.
func (s *Sounding) StationInfo() StationInfo {
	return s.station
}

// SetValidTime sets the time the sounding is valid for, interpreted as UTC.
func (s *Sounding) SetValidTime(t time.Time) *Sounding {
	s.validTime = t.UTC()
	return s
}

// ValidTime returns the valid time and whether one was set.
func (s *Sounding) ValidTime() (time.Time, bool) {
	return s.validTime, !s.validTime.IsZero()
}

// SetLeadTime sets the forecast lead time in hours: zero for an observed
// or analyzed sounding, positive for model forecasts.
func (s *Sounding) SetLeadTime(hours int) *Sounding {
	s.leadTime = optval.Some(hours)
	return s
}

// LeadTime returns the forecast lead time in hours, missing if unset.
func (s *Sounding) LeadTime() optval.Value[int] {
	return s.leadTime
}

// SetTiePolicy selects the duplicate-pressure behavior of merged
// iteration. See TiePolicy.
func (s *Sounding) SetTiePolicy(p TiePolicy) *Sounding {
	s.tiePolicy = p
	return s
}

// TiePolicy returns the configured duplicate-pressure behavior.
func (s *Sounding) TiePolicy() TiePolicy {
	return s.tiePolicy
}

// NumLevels returns the established level count, zero for a fresh
// sounding.
func (s *Sounding) NumLevels() int {
	return s.levels
}

// Clone returns an independent deep copy of the sounding.
func (s *Sounding) Clone() *Sounding {
	return deep.MustCopy(s)
}

// NearestRow returns the stored level whose pressure is closest to the
// given target in hPa, or false if no level has a present pressure. The
// scan stops early once the distance starts growing, which assumes the
// usual monotonic pressure profile.
func (s *Sounding) NearestRow(targetPressure float64) (DataRow, bool) {
	bestIdx := -1
	bestDiff := math.MaxFloat64
	for i, p := range s.profiles[Pressure] {
		v, ok := p.Get()
		if !ok {
			continue
		}
		diff := math.Abs(targetPressure - v)
		if diff < bestDiff {
			bestDiff = diff
			bestIdx = i
		} else if diff > bestDiff {
			break
		}
	}

	if bestIdx == -1 {
		return DataRow{}, false
	}
	row, _ := s.Row(bestIdx)
	return row, true
}
