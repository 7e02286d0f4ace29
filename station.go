// station.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sounding

import "github.com/skewt/sounding/optval"

// StationInfo identifies where a sounding was taken: station number,
// coordinates, and elevation. For model soundings the elevation is the
// model terrain height at the grid point, which need not match the real
// world. It is attached to a Sounding as a whole value and replaced the
// same way.
type StationInfo struct {
	// ID is the station number, e.g. the USAF number 727730.
	ID optval.Value[int]
	// Latitude in degrees north.
	Latitude Value
	// Longitude in degrees east.
	Longitude Value
	// Elevation in meters. Also used as the geopotential height of the
	// surface row during merged iteration.
	Elevation Value
}

// MakeStationInfo assembles a fully specified StationInfo.
func MakeStationInfo(id int, lat, lon, elevation float64) StationInfo {
	return StationInfo{
		ID:        optval.Some(id),
		Latitude:  optval.Some(lat),
		Longitude: optval.Some(lon),
		Elevation: optval.Some(elevation),
	}
}
