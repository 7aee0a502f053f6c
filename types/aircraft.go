package types

import "strings"

// AircraftRecord is one aircraft from the ADS-B feed. Position, altitude,
// speed, callsign and type code are all optional on the wire; a missing
// numeric field is absent, not zero.
type AircraftRecord struct {
	Hex      string      `json:"hex"`
	Flight   *string     `json:"flight,omitempty"`
	TypeCode *string     `json:"t,omitempty"`
	Lat      *float64    `json:"lat,omitempty"`
	Lon      *float64    `json:"lon,omitempty"`
	GS       *float64    `json:"gs,omitempty"`
	AltBaro  interface{} `json:"alt_baro,omitempty"` // number, or "ground"
}

// HasPosition reports whether both coordinates are present.
func (a AircraftRecord) HasPosition() bool {
	return a.Lat != nil && a.Lon != nil
}

// Callsign returns the trimmed flight callsign, falling back to the hex
// identifier when the callsign is missing or blank.
func (a AircraftRecord) Callsign() string {
	if a.Flight != nil {
		if cs := strings.TrimSpace(*a.Flight); cs != "" {
			return cs
		}
	}
	return a.Hex
}

// AltitudeDisplay renders the barometric altitude for the adversary detail
// list. The feed sends a number or the string "ground"; anything else is "?".
func (a AircraftRecord) AltitudeDisplay() string {
	switch v := a.AltBaro.(type) {
	case float64:
		return trimFloat(v)
	case string:
		if v != "" {
			return v
		}
	}
	return "?"
}

type CountryGroup string

const (
	GroupUS      CountryGroup = "us"
	GroupIran    CountryGroup = "iran"
	GroupRussia  CountryGroup = "russia"
	GroupChina   CountryGroup = "china"
	GroupAllied  CountryGroup = "allied"
	GroupUnknown CountryGroup = "unknown"
)

// IsAdversary reports whether the group counts toward adversary activity.
func (g CountryGroup) IsAdversary() bool {
	return g == GroupIran || g == GroupRussia || g == GroupChina
}

type AircraftType string

const (
	TypeFighter   AircraftType = "fighter"
	TypeTanker    AircraftType = "tanker"
	TypeBomber    AircraftType = "bomber"
	TypeRecon     AircraftType = "recon"
	TypeTransport AircraftType = "transport"
	TypeHeli      AircraftType = "heli"
	TypeOther     AircraftType = "other"
)

// Zone is a fixed named bounding box monitored for aircraft presence.
// Membership is inclusive on all four bounds.
type Zone struct {
	Name   string  `json:"name" firestore:"name"`
	MinLat float64 `json:"minLat" firestore:"minLat"`
	MinLon float64 `json:"minLon" firestore:"minLon"`
	MaxLat float64 `json:"maxLat" firestore:"maxLat"`
	MaxLon float64 `json:"maxLon" firestore:"maxLon"`
}

// Contains tests zone membership for a point, inclusive at the boundaries.
func (z Zone) Contains(lat, lon float64) bool {
	return lat >= z.MinLat && lat <= z.MaxLat && lon >= z.MinLon && lon <= z.MaxLon
}
