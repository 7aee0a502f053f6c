package briefing

import (
	"fmt"
	"strings"

	"mil-briefing/threat"
	"mil-briefing/types"
)

// ComposeFallback assembles the deterministic briefing: fixed paragraphs
// conditioned on the same thresholds the detailed assessor reads. Always
// returns non-empty prose.
func ComposeFallback(analysis types.Analysis, headlines []types.NewsItem, th threat.Thresholds) string {
	level := threat.AssessDetailed(analysis, th)

	var paragraphs []string

	paragraphs = append(paragraphs, fmt.Sprintf(
		"THREAT ASSESSMENT: %s. Currently tracking %d military aircraft globally across all monitored nations. "+
			"US forces have %d aircraft airborne. Allied partners account for %d additional tracked assets.",
		level, analysis.Total, analysis.Counts.US, analysis.Counts.Allied))

	if analysis.Types.Tanker >= th.TankerSurge {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"LOGISTICS INDICATOR: %d aerial refueling tankers are currently airborne, suggesting extended-range operations are underway or being prepared. "+
				"Tanker surges typically precede strike packages or long-duration ISR missions by 2-6 hours.",
			analysis.Types.Tanker))
	}
	if analysis.Types.Recon >= th.ReconSurge {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"INTELLIGENCE COLLECTION: %d ISR and reconnaissance aircraft are active. "+
				"Elevated recon activity typically indicates active target acquisition or battle damage assessment operations.",
			analysis.Types.Recon))
	}
	if analysis.Types.Bomber >= th.BomberPresence {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"STRATEGIC INDICATOR: %d strategic bomber%s currently tracked airborne. "+
				"Bomber deployments are high-visibility signals and may indicate signaling, training, or pre-strike positioning.",
			analysis.Types.Bomber, plural(analysis.Types.Bomber)))
	}

	paragraphs = append(paragraphs, adversaryParagraph(analysis))

	if media := topHeadlines(headlines, 2); media != "" {
		paragraphs = append(paragraphs, "MEDIA SIGNALS: "+strings.ReplaceAll(media, "\n", " | "))
	}

	paragraphs = append(paragraphs,
		"WATCH: Monitor tanker and ISR aircraft positioning relative to adversary territory. "+
			"Any increase in adversary aircraft broadcasting combined with tanker surges warrants elevated attention.")

	return strings.Join(paragraphs, "\n\n")
}

func adversaryParagraph(analysis types.Analysis) string {
	adv := analysis.AdversaryDetails
	if len(adv) == 0 {
		return "ADVERSARY ACTIVITY: No Iranian, Russian, or Chinese military aircraft currently broadcasting ADS-B. " +
			"This is normal — adversary forces frequently operate with transponders off, particularly during sensitive operations."
	}

	seen := map[types.CountryGroup]bool{}
	var countries []string
	for _, d := range adv {
		if !seen[d.Country] {
			seen[d.Country] = true
			countries = append(countries, string(d.Country))
		}
	}

	zoneNote := "No adversary aircraft in monitored chokepoints."
	if len(analysis.ZoneActivity) > 0 {
		zoneNote = fmt.Sprintf("Zone activity detected: %s.", joinZones(analysis.ZoneActivity))
	}

	return fmt.Sprintf("ADVERSARY ACTIVITY: %d adversary aircraft currently broadcasting: %s. %s",
		len(adv), strings.Join(countries, ", "), zoneNote)
}
