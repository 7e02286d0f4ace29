// row.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sounding

// DataRow is one vertical level of a sounding with a column per profile
// kind: either a copy of a stored level or the synthetic surface level
// spliced in by merged iteration. Rows are ephemeral views; mutating one
// never touches the Sounding it came from.
type DataRow struct {
	// Pressure in hPa.
	Pressure Value
	// Temperature in Celsius.
	Temperature Value
	// WetBulb temperature in Celsius.
	WetBulb Value
	// DewPoint temperature in Celsius.
	DewPoint Value
	// ThetaE is equivalent potential temperature in Kelvin.
	ThetaE Value
	// WindDirection the wind blows from, in degrees.
	WindDirection Value
	// WindSpeed in knots.
	WindSpeed Value
	// Omega is pressure vertical velocity in Pa/s.
	Omega Value
	// Height is geopotential height in meters.
	Height Value
	// CloudFraction in percent.
	CloudFraction Value
}

// Equal reports whether two rows hold the same values column by column,
// with missing matching only missing.
func (r DataRow) Equal(o DataRow) bool {
	return r.Pressure.Equal(o.Pressure) &&
		r.Temperature.Equal(o.Temperature) &&
		r.WetBulb.Equal(o.WetBulb) &&
		r.DewPoint.Equal(o.DewPoint) &&
		r.ThetaE.Equal(o.ThetaE) &&
		r.WindDirection.Equal(o.WindDirection) &&
		r.WindSpeed.Equal(o.WindSpeed) &&
		r.Omega.Equal(o.Omega) &&
		r.Height.Equal(o.Height) &&
		r.CloudFraction.Equal(o.CloudFraction)
}

// field returns a pointer to the row column holding the given profile kind.
func (r *DataRow) field(k ProfileKind) *Value {
	switch k {
	case Pressure:
		return &r.Pressure
	case Temperature:
		return &r.Temperature
	case WetBulb:
		return &r.WetBulb
	case DewPoint:
		return &r.DewPoint
	case ThetaE:
		return &r.ThetaE
	case WindDirection:
		return &r.WindDirection
	case WindSpeed:
		return &r.WindSpeed
	case PressureVerticalVelocity:
		return &r.Omega
	case GeopotentialHeight:
		return &r.Height
	case CloudFraction:
		return &r.CloudFraction
	default:
		panic("unknown profile kind " + k.String())
	}
}

// Row returns the data row at storage index i, or false if the index is
// outside the sounding's levels. Unset profiles contribute missing values.
func (s *Sounding) Row(i int) (DataRow, bool) {
	if i < 0 || i >= s.levels {
		return DataRow{}, false
	}

	var row DataRow
	for k := range ProfileKind(NumProfileKinds) {
		if p := s.profiles[k]; p != nil {
			*row.field(k) = p[i]
		}
	}
	return row, true
}

// SurfaceRow returns the surface observation shaped as a data row: station
// pressure in the pressure column, the 2-meter values in the temperature
// and dew point columns, the surface wind, and the station elevation as
// height. Surface kinds without a profile counterpart (MSLP, the cloud
// layers, precipitation) stay reachable only through SurfaceValue.
func (s *Sounding) SurfaceRow() DataRow {
	return DataRow{
		Pressure:      s.surface[StationPressure],
		Temperature:   s.surface[SurfaceTemperature],
		DewPoint:      s.surface[SurfaceDewPoint],
		WindDirection: s.surface[SurfaceWindDirection],
		WindSpeed:     s.surface[SurfaceWindSpeed],
		Height:        s.station.Elevation,
	}
}
