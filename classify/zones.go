package classify

import (
	"fmt"

	"mil-briefing/types"
)

// WatchZones are the monitored chokepoints, in the order they appear in the
// published activity list. Zones overlap; one aircraft may count toward
// several.
var WatchZones = []types.Zone{
	{Name: "Strait of Hormuz", MinLat: 25.5, MinLon: 55.5, MaxLat: 27.5, MaxLon: 57.5},
	{Name: "Persian Gulf", MinLat: 24.0, MinLon: 48.0, MaxLat: 30.0, MaxLon: 56.0},
	{Name: "Taiwan Strait", MinLat: 22.0, MinLon: 117.0, MaxLat: 26.0, MaxLon: 121.0},
	{Name: "South China Sea", MinLat: 5.0, MinLon: 108.0, MaxLat: 18.0, MaxLon: 121.0},
	{Name: "Black Sea", MinLat: 41.0, MinLon: 27.0, MaxLat: 47.0, MaxLon: 42.0},
}

// ZoneActivity counts positioned aircraft per zone and renders the activity
// list. Zones with no aircraft are omitted; declared zone order is preserved
// among the rest.
func ZoneActivity(zones []types.Zone, positioned []types.AircraftRecord) []string {
	var activity []string
	for _, z := range zones {
		n := 0
		for _, ac := range positioned {
			if ac.HasPosition() && z.Contains(*ac.Lat, *ac.Lon) {
				n++
			}
		}
		if n > 0 {
			activity = append(activity, fmt.Sprintf("%s: %d aircraft", z.Name, n))
		}
	}
	return activity
}
