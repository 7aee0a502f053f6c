package news

import (
	"strings"
	"time"

	"mil-briefing/types"
)

// Category names. A headline may carry any subset, including none: the
// result is a set, unlike the aircraft type's ordered first-match rule.
const (
	CategoryDeployment = "deployment"
	CategoryExercise   = "exercise"
	CategoryConflict   = "conflict"
)

var deploymentKeywords = []string{
	"carrier", "strike group", "csg", "arg", "deployed", "deployment", "transit",
	"destroyer", "submarine", "uss ", "naval", "fleet", "centcom", "fifth fleet",
	"5th fleet", "middle east", "persian gulf", "arabian sea", "red sea",
	"mediterranean", "israel", "iran", "houthi", "yemen", "iraq", "syria",
}

var exerciseKeywords = []string{
	"exercise", "drills", "nato", "operation", "maneuver", "wargame",
	"iron dome", "juniper", "bright star",
}

var conflictKeywords = []string{
	"strike", "attack", "killed", "missile", "drone strike", "airstrike",
	"ceasefire", "offensive", "invasion", "escalat",
}

// Categorize tags a headline with every category whose keyword list matches,
// case-insensitively. Returns nil for an unmatched headline.
func Categorize(title string) []string {
	t := strings.ToLower(title)
	var cats []string
	if matchesAny(t, deploymentKeywords) {
		cats = append(cats, CategoryDeployment)
	}
	if matchesAny(t, exerciseKeywords) {
		cats = append(cats, CategoryExercise)
	}
	if matchesAny(t, conflictKeywords) {
		cats = append(cats, CategoryConflict)
	}
	return cats
}

func matchesAny(t string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// Reserved indicator keys set by external curation. They must survive every
// automated recomputation verbatim.
var preservedIndicatorKeys = []string{"manual_override", "breaking_events"}

// ComputeThreatIndicators counts articles per category as a rough signal.
func ComputeThreatIndicators(items []types.NewsItem, now time.Time) map[string]interface{} {
	deployment, conflict, exercise := 0, 0, 0
	for _, it := range items {
		if it.HasCategory(CategoryDeployment) {
			deployment++
		}
		if it.HasCategory(CategoryConflict) {
			conflict++
		}
		if it.HasCategory(CategoryExercise) {
			exercise++
		}
	}
	return map[string]interface{}{
		"deployment_articles": deployment,
		"conflict_articles":   conflict,
		"exercise_articles":   exercise,
		"total_articles":      len(items),
		"computed_at":         now.UTC().Format(time.RFC3339),
	}
}

// MergeThreatIndicators applies the preserved-key whitelist: fresh counts win
// everywhere except the curated keys, which carry over from the existing
// indicators when present.
func MergeThreatIndicators(existing, computed map[string]interface{}) map[string]interface{} {
	for _, key := range preservedIndicatorKeys {
		if v, ok := existing[key]; ok {
			computed[key] = v
		}
	}
	return computed
}
