package classify

import (
	"strconv"
	"strings"

	"mil-briefing/types"
)

// ICAO hex allocation ranges, inclusive. A parseable identifier outside all
// four ranges is allied; an unparseable identifier is unknown. The two
// fallbacks are distinct and must stay that way.
const (
	usRangeLow      = 0xA00000
	usRangeHigh     = 0xAFFFFF
	iranRangeLow    = 0x730000
	iranRangeHigh   = 0x737FFF
	russiaRangeLow  = 0x100000
	russiaRangeHigh = 0x13FFFF
	chinaRangeLow   = 0x780000
	chinaRangeHigh  = 0x7BFFFF
)

// typeKeywords maps each aircraft type to its code substrings. Evaluation
// order is fixed: fighter, tanker, bomber, recon, transport, heli. First list
// with a matching substring wins; some lists share prefixes, so the order is
// a contract, not a convenience.
var typeKeywords = []struct {
	Type     types.AircraftType
	Keywords []string
}{
	{types.TypeFighter, []string{"F15", "F16", "F18", "F22", "F35", "SU27", "SU30", "SU35", "MIG29", "J10", "J11", "J20", "A10"}},
	{types.TypeTanker, []string{"KC10", "KC46", "KC135", "KC130", "MRTT", "IL78"}},
	{types.TypeBomber, []string{"B52", "B1", "B2", "TU95", "TU160", "H6"}},
	{types.TypeRecon, []string{"P8", "P3", "RC135", "E3", "E6", "U2", "RQ4", "MQ9", "AWACS", "E737"}},
	{types.TypeTransport, []string{"C17", "C130", "C30J", "C5", "IL76", "AN124", "Y20", "A400"}},
	{types.TypeHeli, []string{"UH60", "AH64", "CH47", "CH53", "MH60", "MI17", "MI24"}},
}

// CountryGroupOf derives the country group from the numeric value of the hex
// identifier. Pure and total: every input maps to exactly one group.
func CountryGroupOf(hex string) types.CountryGroup {
	v, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return types.GroupUnknown
	}
	switch {
	case v >= usRangeLow && v <= usRangeHigh:
		return types.GroupUS
	case v >= iranRangeLow && v <= iranRangeHigh:
		return types.GroupIran
	case v >= russiaRangeLow && v <= russiaRangeHigh:
		return types.GroupRussia
	case v >= chinaRangeLow && v <= chinaRangeHigh:
		return types.GroupChina
	}
	return types.GroupAllied
}

// AircraftTypeOf derives the aircraft type from the free-text type code via
// ordered substring lookup. Empty or unmatched codes resolve to other.
func AircraftTypeOf(code string) types.AircraftType {
	t := normalizeCode(code)
	if t == "" {
		return types.TypeOther
	}
	for _, entry := range typeKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(t, kw) {
				return entry.Type
			}
		}
	}
	return types.TypeOther
}

// Classify maps one record to its (country group, aircraft type) pair. Never
// fails; a fully empty record classifies as (unknown, other).
func Classify(rec types.AircraftRecord) (types.CountryGroup, types.AircraftType) {
	code := ""
	if rec.TypeCode != nil {
		code = *rec.TypeCode
	}
	return CountryGroupOf(rec.Hex), AircraftTypeOf(code)
}

func normalizeCode(code string) string {
	t := strings.ToUpper(code)
	t = strings.ReplaceAll(t, " ", "")
	return strings.ReplaceAll(t, "-", "")
}
