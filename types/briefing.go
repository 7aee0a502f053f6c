package types

type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "LOW"
	ThreatGuarded  ThreatLevel = "GUARDED"
	ThreatElevated ThreatLevel = "ELEVATED"
	ThreatHigh     ThreatLevel = "HIGH"
)

var threatRank = map[ThreatLevel]int{
	ThreatLow:      0,
	ThreatGuarded:  1,
	ThreatElevated: 2,
	ThreatHigh:     3,
}

// AtLeast reports whether l is at or above other on the LOW < GUARDED <
// ELEVATED < HIGH scale.
func (l ThreatLevel) AtLeast(other ThreatLevel) bool {
	return threatRank[l] >= threatRank[other]
}

// Raise returns the higher of l and floor. Assessor rules only ever raise a
// level within one evaluation, never lower it.
func (l ThreatLevel) Raise(floor ThreatLevel) ThreatLevel {
	if threatRank[floor] > threatRank[l] {
		return floor
	}
	return l
}

// BriefingStats is the numeric block of the published document.
type BriefingStats struct {
	Total           int         `json:"total" firestore:"total"`
	Counts          GroupCounts `json:"counts" firestore:"counts"`
	Types           TypeCounts  `json:"types" firestore:"types"`
	AdversaryActive int         `json:"adversary_active" firestore:"adversaryActive"`
	ZonesActive     int         `json:"zones_active" firestore:"zonesActive"`
	ZoneNames       []string    `json:"zone_names" firestore:"zoneNames"`
}

// BriefingDocument is the snapshot published once per cycle. It is fully
// replaced each time; the dashboard always shows the most recent successful
// publish.
type BriefingDocument struct {
	GeneratedUTC string        `json:"generated_utc" firestore:"generatedUtc"`
	GeneratedTS  int64         `json:"generated_ts" firestore:"generatedTs"`
	ThreatLevel  ThreatLevel   `json:"threat_level" firestore:"threatLevel"`
	Summary      string        `json:"summary" firestore:"summary"`
	Stats        BriefingStats `json:"stats" firestore:"stats"`
}
