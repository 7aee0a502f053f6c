package threat

import "mil-briefing/types"

// Thresholds is the single table the assessor rules and the fallback
// composer both read, so the narrative and the computed level cannot drift.
type Thresholds struct {
	TankerSurge    int // tankers airborne suggesting extended ops
	ReconSurge     int // ISR aircraft indicating active collection
	BomberPresence int // any strategic bomber airborne
	BomberHigh     int // bombers needed (with zone activity) for HIGH
	AdversaryCount int // adversary aircraft broadcasting at once
}

// Defaults are the operational thresholds.
var Defaults = Thresholds{
	TankerSurge:    3,
	ReconSurge:     2,
	BomberPresence: 1,
	BomberHigh:     2,
	AdversaryCount: 3,
}

// AssessDetailed applies the five ordered rules. Each rule only ever raises
// the level from its current value within one evaluation.
//
//	1. base LOW
//	2. bombers >= 1            -> at least ELEVATED
//	3. adversary count >= 3    -> at least ELEVATED
//	4. any zone activity       -> at least ELEVATED
//	5. bombers >= 2 AND zones  -> HIGH
func AssessDetailed(a types.Analysis, th Thresholds) types.ThreatLevel {
	level := types.ThreatLow

	if a.Types.Bomber >= th.BomberPresence {
		level = level.Raise(types.ThreatElevated)
	}
	if a.Counts.Adversary() >= th.AdversaryCount {
		level = level.Raise(types.ThreatElevated)
	}
	if len(a.ZoneActivity) > 0 {
		level = level.Raise(types.ThreatElevated)
	}
	if a.Types.Bomber >= th.BomberHigh && len(a.ZoneActivity) > 0 {
		level = level.Raise(types.ThreatHigh)
	}

	return level
}

// AssessCompact is the collapsed rule set behind the document's top-level
// threat_level field: ELEVATED on bombers or zone activity, GUARDED on a
// tanker or recon surge, LOW otherwise.
//
// AssessDetailed and AssessCompact can disagree on the same input (two
// bombers plus a zone hit is HIGH detailed, ELEVATED compact). Different
// callers read different fields; both rule sets are kept as-is.
func AssessCompact(a types.Analysis, th Thresholds) types.ThreatLevel {
	switch {
	case a.Types.Bomber >= th.BomberPresence || len(a.ZoneActivity) > 0:
		return types.ThreatElevated
	case a.Types.Tanker >= th.TankerSurge || a.Types.Recon >= th.ReconSurge:
		return types.ThreatGuarded
	}
	return types.ThreatLow
}
