package types

import "strconv"

// GroupCounts tallies positioned aircraft per country group.
type GroupCounts struct {
	US      int `json:"us" firestore:"us"`
	Iran    int `json:"iran" firestore:"iran"`
	Russia  int `json:"russia" firestore:"russia"`
	China   int `json:"china" firestore:"china"`
	Allied  int `json:"allied" firestore:"allied"`
	Unknown int `json:"unknown" firestore:"unknown"`
}

// Sum returns the total across all groups.
func (c GroupCounts) Sum() int {
	return c.US + c.Iran + c.Russia + c.China + c.Allied + c.Unknown
}

// Adversary returns the combined iran/russia/china count.
func (c GroupCounts) Adversary() int {
	return c.Iran + c.Russia + c.China
}

// TypeCounts tallies positioned aircraft per aircraft type.
type TypeCounts struct {
	Fighter   int `json:"fighter" firestore:"fighter"`
	Tanker    int `json:"tanker" firestore:"tanker"`
	Bomber    int `json:"bomber" firestore:"bomber"`
	Recon     int `json:"recon" firestore:"recon"`
	Transport int `json:"transport" firestore:"transport"`
	Heli      int `json:"heli" firestore:"heli"`
	Other     int `json:"other" firestore:"other"`
}

// Sum returns the total across all types.
func (c TypeCounts) Sum() int {
	return c.Fighter + c.Tanker + c.Bomber + c.Recon + c.Transport + c.Heli + c.Other
}

// AdversaryDetail is one iran/russia/china aircraft in the analysis detail
// list. Altitude and speed are display strings because the feed may omit
// them ("?" substitutes for absent values).
type AdversaryDetail struct {
	Country  CountryGroup `json:"country" firestore:"country"`
	Callsign string       `json:"callsign" firestore:"callsign"`
	Type     string       `json:"type" firestore:"type"`
	Alt      string       `json:"alt" firestore:"alt"`
	Speed    string       `json:"speed" firestore:"speed"`
	Lat      float64      `json:"lat" firestore:"lat"`
	Lon      float64      `json:"lon" firestore:"lon"`
}

// Analysis is the aggregate snapshot of one cycle's positioned aircraft.
// Invariant: Counts.Sum() == Total == Types.Sum().
type Analysis struct {
	Total            int               `json:"total" firestore:"total"`
	Counts           GroupCounts       `json:"counts" firestore:"counts"`
	Types            TypeCounts        `json:"types" firestore:"types"`
	AdversaryDetails []AdversaryDetail `json:"adversary_details" firestore:"adversaryDetails"`
	ZoneActivity     []string          `json:"zone_activity" firestore:"zoneActivity"`
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
