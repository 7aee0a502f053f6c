package classify

import (
	"reflect"
	"testing"

	"mil-briefing/types"
)

func ptr(v float64) *float64 { return &v }

func positioned(lat, lon float64) types.AircraftRecord {
	return types.AircraftRecord{Hex: "AE0000", Lat: ptr(lat), Lon: ptr(lon)}
}

func TestZoneContains_InclusiveBounds(t *testing.T) {
	z := types.Zone{Name: "Test", MinLat: 10, MinLon: 20, MaxLat: 30, MaxLon: 40}

	cases := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"min corner", 10, 20, true},
		{"max corner", 30, 40, true},
		{"interior", 20, 30, true},
		{"below min lat", 9.999, 20, false},
		{"above max lon", 20, 40.001, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := z.Contains(tc.lat, tc.lon); got != tc.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
			}
		})
	}
}

func TestZoneActivity_OmitsEmptyAndPreservesOrder(t *testing.T) {
	// One aircraft in the Black Sea, two in the Taiwan Strait; declared zone
	// order puts Taiwan Strait first.
	aircraft := []types.AircraftRecord{
		positioned(43.0, 30.0),
		positioned(24.0, 119.0),
		positioned(25.0, 120.0),
	}

	got := ZoneActivity(WatchZones, aircraft)
	want := []string{"Taiwan Strait: 2 aircraft", "Black Sea: 1 aircraft"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ZoneActivity = %v, want %v", got, want)
	}
}

func TestZoneActivity_OverlappingZones(t *testing.T) {
	// The Strait of Hormuz box sits inside the Persian Gulf box where
	// longitude <= 56; one aircraft there counts toward both.
	aircraft := []types.AircraftRecord{positioned(26.0, 55.8)}

	got := ZoneActivity(WatchZones, aircraft)
	want := []string{"Strait of Hormuz: 1 aircraft", "Persian Gulf: 1 aircraft"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ZoneActivity = %v, want %v", got, want)
	}
}

func TestZoneActivity_NoAircraft(t *testing.T) {
	if got := ZoneActivity(WatchZones, nil); len(got) != 0 {
		t.Errorf("ZoneActivity(nil) = %v, want empty", got)
	}
}
