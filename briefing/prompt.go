package briefing

import (
	"encoding/json"
	"fmt"
	"strings"

	"mil-briefing/types"
)

const promptDetailLimit = 10

// BuildPrompt embeds the numeric breakdown, the top adversary details, zone
// activity, and the top headlines into the analyst prompt.
func BuildPrompt(analysis types.Analysis, headlines []types.NewsItem) string {
	adv := analysis.AdversaryDetails
	if len(adv) > promptDetailLimit {
		adv = adv[:promptDetailLimit]
	}

	advBlock := "None currently broadcasting ADS-B"
	if len(adv) > 0 {
		if raw, err := json.MarshalIndent(adv, "", "  "); err == nil {
			advBlock = string(raw)
		}
	}

	zoneBlock := "No aircraft in monitored zones"
	if len(analysis.ZoneActivity) > 0 {
		zoneBlock = strings.Join(analysis.ZoneActivity, "\n")
	}

	newsBlock := "No headlines available"
	if top := topHeadlines(headlines, promptDetailLimit); top != "" {
		newsBlock = top
	}

	var b strings.Builder
	b.WriteString("You are a military OSINT analyst. Generate a concise, objective intelligence briefing based on the following live data. Be analytical, not alarmist. Use plain language. No markdown headers — just 3-4 short paragraphs. Be specific about numbers and locations.\n\n")

	fmt.Fprintf(&b, "LIVE AIRCRAFT DATA (%d aircraft tracked):\n", analysis.Total)
	fmt.Fprintf(&b, "- US: %d, Iran: %d, Russia: %d, China: %d, Allied: %d\n",
		analysis.Counts.US, analysis.Counts.Iran, analysis.Counts.Russia,
		analysis.Counts.China, analysis.Counts.Allied)
	fmt.Fprintf(&b, "- Tankers airborne: %d (high tanker count = extended ops being prepared)\n", analysis.Types.Tanker)
	fmt.Fprintf(&b, "- ISR/Recon airborne: %d\n", analysis.Types.Recon)
	fmt.Fprintf(&b, "- Bombers airborne: %d\n", analysis.Types.Bomber)
	fmt.Fprintf(&b, "- Fighters/Attack: %d\n\n", analysis.Types.Fighter)

	b.WriteString("ADVERSARY AIRCRAFT CURRENTLY VISIBLE:\n")
	b.WriteString(advBlock)
	b.WriteString("\n\nACTIVE ALERT ZONES:\n")
	b.WriteString(zoneBlock)
	b.WriteString("\n\nRECENT NEWS HEADLINES:\n")
	b.WriteString(newsBlock)
	b.WriteString("\n\nWrite a 3-4 paragraph intelligence briefing. Include: overall activity assessment, notable adversary movements if any, zone activity significance, and one sentence on what to watch for in the next 24 hours.")

	return b.String()
}
