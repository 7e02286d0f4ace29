// kinds.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sounding

// ProfileKind names the per-level quantities a sounding may store. The set
// is closed: profiles are held in fixed-size tables indexed by kind, so
// adding a quantity means extending the enumeration.
type ProfileKind int

const (
	// Pressure in hPa.
	Pressure ProfileKind = iota
	// Temperature in Celsius.
	Temperature
	// WetBulb temperature in Celsius.
	WetBulb
	// DewPoint temperature in Celsius.
	DewPoint
	// ThetaE is equivalent potential temperature in Kelvin.
	ThetaE
	// WindDirection the wind blows from, in degrees.
	WindDirection
	// WindSpeed in knots.
	WindSpeed
	// PressureVerticalVelocity in Pa/s.
	PressureVerticalVelocity
	// GeopotentialHeight in meters.
	GeopotentialHeight
	// CloudFraction in percent.
	CloudFraction

	NumProfileKinds int = iota
)

func (p ProfileKind) String() string {
	switch p {
	case Pressure:
		return "pressure"
	case Temperature:
		return "temperature"
	case WetBulb:
		return "wet bulb temperature"
	case DewPoint:
		return "dew point temperature"
	case ThetaE:
		return "equivalent potential temperature"
	case WindDirection:
		return "wind direction"
	case WindSpeed:
		return "wind speed"
	case PressureVerticalVelocity:
		return "vertical velocity"
	case GeopotentialHeight:
		return "height"
	case CloudFraction:
		return "cloud fraction"
	default:
		return "unknown profile kind"
	}
}

// SurfaceKind names the near-surface quantities, observed separately from
// the upper-air profile (different instruments or, for model output, a true
// surface below the lowest model level).
type SurfaceKind int

const (
	// MSLP is surface pressure reduced to mean sea level, in hPa.
	MSLP SurfaceKind = iota
	// StationPressure in hPa. This pressure ranks the surface row during
	// merged iteration.
	StationPressure
	// LowCloud fraction in percent.
	LowCloud
	// MidCloud fraction in percent.
	MidCloud
	// HighCloud fraction in percent.
	HighCloud
	// SurfaceWindDirection the wind blows from, in degrees.
	SurfaceWindDirection
	// SurfaceWindSpeed in knots.
	SurfaceWindSpeed
	// SurfaceTemperature at 2 meters, in Celsius.
	SurfaceTemperature
	// SurfaceDewPoint at 2 meters, in Celsius.
	SurfaceDewPoint
	// Precipitation as liquid equivalent, in inches.
	Precipitation

	NumSurfaceKinds int = iota
)

func (s SurfaceKind) String() string {
	switch s {
	case MSLP:
		return "sea level pressure"
	case StationPressure:
		return "station pressure"
	case LowCloud:
		return "low cloud fraction"
	case MidCloud:
		return "mid cloud fraction"
	case HighCloud:
		return "high cloud fraction"
	case SurfaceWindDirection:
		return "wind direction"
	case SurfaceWindSpeed:
		return "wind speed"
	case SurfaceTemperature:
		return "2-meter temperature"
	case SurfaceDewPoint:
		return "2-meter dew point"
	case Precipitation:
		return "precipitation (liquid equivalent)"
	default:
		return "unknown surface kind"
	}
}

// IndexKind names stored stability/severe-weather index values. A sounding
// only carries indexes supplied by whoever built it (e.g. decoded from a
// bufkit file); it never derives them itself.
type IndexKind int

const (
	// Showalter index.
	Showalter IndexKind = iota
	// LiftedIndex.
	LiftedIndex
	// SWeT is the Severe Weather Threat index.
	SWeT
	// KIndex.
	KIndex
	// LCL is the lifting condensation level in hPa.
	LCL
	// PrecipitableWater in mm.
	PrecipitableWater
	// TotalTotals index.
	TotalTotals
	// CAPE is convective available potential energy in J/kg.
	CAPE
	// LCLTemperature in Kelvin.
	LCLTemperature
	// CIN is convective inhibition in J/kg.
	CIN
	// EquilibriumLevel in hPa.
	EquilibriumLevel
	// LFC is the level of free convection in hPa.
	LFC
	// BulkRichardson number.
	BulkRichardson
	// Haines index.
	Haines

	NumIndexKinds int = iota
)

func (i IndexKind) String() string {
	switch i {
	case Showalter:
		return "Showalter index"
	case LiftedIndex:
		return "lifted index"
	case SWeT:
		return "severe weather threat index"
	case KIndex:
		return "K index"
	case LCL:
		return "lifting condensation level"
	case PrecipitableWater:
		return "precipitable water"
	case TotalTotals:
		return "total totals"
	case CAPE:
		return "CAPE"
	case LCLTemperature:
		return "LCL temperature"
	case CIN:
		return "CIN"
	case EquilibriumLevel:
		return "equilibrium level"
	case LFC:
		return "level of free convection"
	case BulkRichardson:
		return "bulk Richardson number"
	case Haines:
		return "Haines index"
	default:
		return "unknown index kind"
	}
}
