package analyze

import (
	"math"
	"strconv"

	"mil-briefing/classify"
	"mil-briefing/types"
)

// maxAdversaryDetails caps the detail list; entries keep input order.
const maxAdversaryDetails = 20

// BuildAnalysis folds the raw record list into an aggregate Analysis. An
// empty input is a valid "no data" state and yields an empty Analysis.
// Records missing either coordinate are excluded from every aggregate.
func BuildAnalysis(aircraft []types.AircraftRecord) types.Analysis {
	if len(aircraft) == 0 {
		return types.Analysis{}
	}

	var positioned []types.AircraftRecord
	for _, ac := range aircraft {
		if ac.HasPosition() {
			positioned = append(positioned, ac)
		}
	}

	analysis := types.Analysis{Total: len(positioned)}

	for _, ac := range positioned {
		group, acType := classify.Classify(ac)
		tallyGroup(&analysis.Counts, group)
		tallyType(&analysis.Types, acType)

		if group.IsAdversary() && len(analysis.AdversaryDetails) < maxAdversaryDetails {
			analysis.AdversaryDetails = append(analysis.AdversaryDetails, adversaryDetail(ac, group))
		}
	}

	analysis.ZoneActivity = classify.ZoneActivity(classify.WatchZones, positioned)
	return analysis
}

func tallyGroup(c *types.GroupCounts, g types.CountryGroup) {
	switch g {
	case types.GroupUS:
		c.US++
	case types.GroupIran:
		c.Iran++
	case types.GroupRussia:
		c.Russia++
	case types.GroupChina:
		c.China++
	case types.GroupAllied:
		c.Allied++
	default:
		c.Unknown++
	}
}

func tallyType(c *types.TypeCounts, t types.AircraftType) {
	switch t {
	case types.TypeFighter:
		c.Fighter++
	case types.TypeTanker:
		c.Tanker++
	case types.TypeBomber:
		c.Bomber++
	case types.TypeRecon:
		c.Recon++
	case types.TypeTransport:
		c.Transport++
	case types.TypeHeli:
		c.Heli++
	default:
		c.Other++
	}
}

func adversaryDetail(ac types.AircraftRecord, group types.CountryGroup) types.AdversaryDetail {
	typeCode := "?"
	if ac.TypeCode != nil && *ac.TypeCode != "" {
		typeCode = *ac.TypeCode
	}

	speed := "?"
	if ac.GS != nil {
		speed = strconv.Itoa(int(math.Round(*ac.GS)))
	}

	return types.AdversaryDetail{
		Country:  group,
		Callsign: ac.Callsign(),
		Type:     typeCode,
		Alt:      ac.AltitudeDisplay(),
		Speed:    speed,
		Lat:      round2(*ac.Lat),
		Lon:      round2(*ac.Lon),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
