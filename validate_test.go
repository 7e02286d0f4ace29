// validate_test.go
// Copyright(c) 2026 skewt contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sounding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skewt/sounding/optval"
)

// validTestSounding is a complete, physically consistent sounding of eight
// levels with surface data, station info, and stored index values.
func validTestSounding(t *testing.T) *Sounding {
	t.Helper()

	s := New().
		SetStationInfo(MakeStationInfo(1, 45.0, -115.0, 1023.0)).
		SetLeadTime(0).
		SetIndex(Showalter, optval.Some(-2.0)).
		SetIndex(LiftedIndex, optval.Some(-2.0)).
		SetIndex(SWeT, optval.Some(35.0)).
		SetIndex(KIndex, optval.Some(45.0)).
		SetIndex(LCL, optval.Some(850.0)).
		SetIndex(PrecipitableWater, optval.Some(2.0)).
		SetIndex(TotalTotals, optval.Some(55.0)).
		SetIndex(CAPE, optval.Some(852.0)).
		SetIndex(LCLTemperature, optval.Some(12.0)).
		SetIndex(CIN, optval.Some(-200.0)).
		SetIndex(EquilibriumLevel, optval.Some(222.0)).
		SetIndex(LFC, optval.Some(800.0)).
		SetIndex(BulkRichardson, optval.Some(1.2)).
		SetIndex(Haines, optval.Some(6.0)).
		SetSurfaceValue(MSLP, optval.Some(1014.0)).
		SetSurfaceValue(StationPressure, optval.Some(847.0)).
		SetSurfaceValue(SurfaceWindDirection, optval.Some(0.0)).
		SetSurfaceValue(SurfaceWindSpeed, optval.Some(0.0))

	require.NoError(t, s.SetProfile(Pressure, somes(840, 800, 700, 500, 300, 250, 200, 100)))
	require.NoError(t, s.SetProfile(Temperature, somes(20, 15, 2, -10, -20, -30, -50, -45)))
	require.NoError(t, s.SetProfile(WetBulb, somes(20, 14, 1, -11, -25, -39, -58, -60)))
	require.NoError(t, s.SetProfile(DewPoint, somes(20, 13, 0, -12, -27, -45, -62, -80)))
	require.NoError(t, s.SetProfile(WindDirection, somes(0, 40, 80, 120, 160, 200, 240, 280)))
	require.NoError(t, s.SetProfile(WindSpeed, somes(5, 10, 15, 12, 27, 45, 62, 80)))
	require.NoError(t, s.SetProfile(GeopotentialHeight, somes(100, 200, 300, 400, 500, 650, 700, 800)))
	require.NoError(t, s.SetProfile(CloudFraction, somes(100, 85, 70, 50, 30, 25, 20, 10)))
	return s
}

func TestValidateValidSounding(t *testing.T) {
	assert.NoError(t, validTestSounding(t).Validate())
}

func TestValidateEmptySounding(t *testing.T) {
	// Nothing present means nothing inconsistent.
	assert.NoError(t, New().Validate())
}

func TestValidateFailures(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(t *testing.T, s *Sounding)
		wantMsg string
	}{
		{
			name: "Haines index out of range",
			mutate: func(t *testing.T, s *Sounding) {
				s.SetIndex(Haines, optval.Some(1.0))
			},
			wantMsg: "Haines index",
		},
		{
			name: "dew point above temperature",
			mutate: func(t *testing.T, s *Sounding) {
				require.NoError(t, s.SetProfile(DewPoint, somes(25, 13, 0, -12, -27, -45, -62, -80)))
			},
			wantMsg: "dew point",
		},
		{
			name: "wet bulb above temperature",
			mutate: func(t *testing.T, s *Sounding) {
				require.NoError(t, s.SetProfile(WetBulb, somes(22, 14, 1, -11, -25, -39, -58, -60)))
			},
			wantMsg: "wet bulb",
		},
		{
			name: "non-monotonic pressure",
			mutate: func(t *testing.T, s *Sounding) {
				require.NoError(t, s.SetProfile(Pressure, somes(840, 800, 850, 500, 300, 250, 200, 100)))
			},
			wantMsg: "monotonic",
		},
		{
			name: "negative lead time",
			mutate: func(t *testing.T, s *Sounding) {
				s.SetLeadTime(-6)
			},
			wantMsg: "lead time",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validTestSounding(t)
			tc.mutate(t, s)

			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidateMissingDataIsFine(t *testing.T) {
	// Holes in profiles are the normal case, not an inconsistency.
	s := validTestSounding(t)
	temps := s.Profile(Temperature)
	temps[3] = optval.None[float64]()
	require.NoError(t, s.SetProfile(Temperature, temps))

	pressures := s.Profile(Pressure)
	pressures[5] = optval.None[float64]()
	require.NoError(t, s.SetProfile(Pressure, pressures))

	assert.NoError(t, s.Validate())
}
