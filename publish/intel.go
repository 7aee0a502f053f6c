package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"mil-briefing/news"
	"mil-briefing/types"
)

const (
	defaultGPSStatusURL = "https://gpsjam.org/map.json"
	gpsStatusTimeout    = 8 * time.Second

	deploymentRefLimit = 10
	conflictRefLimit   = 5
	exerciseRefLimit   = 5
)

// IntelUpdater performs the versioned read-modify-write update of the
// intel-data document. Semi-static fields (troop counts, curated zones) are
// manually maintained; the updater only refreshes the news refs, threat
// indicators, timestamp and version.
type IntelUpdater struct {
	Path    string
	Fetcher *news.Fetcher
	GPSURL  string
	HTTP    *http.Client
	Now     func() time.Time
}

// NewIntelUpdater builds an updater over the given baseline path.
func NewIntelUpdater(path string, fetcher *news.Fetcher) *IntelUpdater {
	return &IntelUpdater{
		Path:    path,
		Fetcher: fetcher,
		GPSURL:  defaultGPSStatusURL,
		HTTP:    &http.Client{Timeout: gpsStatusTimeout},
		Now:     time.Now,
	}
}

// Update runs one refresh pass. Without an existing baseline document the
// update cannot proceed: the error surfaces to main, which exits non-zero
// rather than fabricate a baseline.
func (u *IntelUpdater) Update(ctx context.Context) error {
	data, err := loadBaseline(u.Path)
	if err != nil {
		return err
	}
	log.Printf("intel: loaded existing data (v%v)", data["version"])

	items := u.Fetcher.FetchAll(ctx)
	log.Printf("intel: %d articles total", len(items))

	deployment := filterCategory(items, news.CategoryDeployment)
	conflict := filterCategory(items, news.CategoryConflict)
	exercise := filterCategory(items, news.CategoryExercise)
	log.Printf("intel: deployment: %d | conflict: %d | exercise: %d",
		len(deployment), len(conflict), len(exercise))

	data["_naval_news_refs"] = capItems(deployment, deploymentRefLimit)
	data["_conflict_news_refs"] = capItems(conflict, conflictRefLimit)
	data["_exercise_news_refs"] = capItems(exercise, exerciseRefLimit)

	computed := news.ComputeThreatIndicators(items, u.Now())
	existing, _ := data["_threat_indicators"].(map[string]interface{})
	data["_threat_indicators"] = news.MergeThreatIndicators(existing, computed)

	// GPS jamming status is best-effort and never replaces curated zones.
	if u.checkGPSStatus(ctx) {
		data["_gps_last_fetch"] = u.Now().UTC().Format(time.RFC3339)
	} else {
		log.Printf("intel: GPS jamming data unavailable, keeping existing zones")
	}

	data["generated_utc"] = u.Now().UTC().Format("2006-01-02T15:04:05Z")
	data["version"] = currentVersion(data) + 1
	log.Printf("intel: version %v", data["version"])

	if err := writeJSONAtomic(u.Path, data); err != nil {
		return fmt.Errorf("writing %s: %w", u.Path, err)
	}
	return nil
}

// loadBaseline reads the existing intel document. Missing or unreadable
// baselines are fatal for the invocation.
func loadBaseline(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no existing intel data at %s: %w", path, err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing existing intel data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("existing intel data at %s is empty", path)
	}
	return data, nil
}

// currentVersion reads the version counter, tolerating the float64 that
// encoding/json produces for numbers.
func currentVersion(data map[string]interface{}) int {
	switch v := data["version"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (u *IntelUpdater) checkGPSStatus(ctx context.Context) bool {
	reqCtx, cancel := context.WithTimeout(ctx, gpsStatusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.GPSURL, nil)
	if err != nil {
		return false
	}
	resp, err := u.HTTP.Do(req)
	if err != nil {
		log.Printf("intel: gps status: %v", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func filterCategory(items []types.NewsItem, cat string) []types.NewsItem {
	var out []types.NewsItem
	for _, it := range items {
		if it.HasCategory(cat) {
			out = append(out, it)
		}
	}
	return out
}

func capItems(items []types.NewsItem, n int) []types.NewsItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}
