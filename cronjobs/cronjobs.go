package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"mil-briefing/adsb"
	"mil-briefing/analyze"
	"mil-briefing/briefing"
	"mil-briefing/news"
	"mil-briefing/publish"
	"mil-briefing/threat"
	"mil-briefing/types"
)

// Pipeline wires the collaborators for one briefing cycle: fetch aircraft,
// fetch news, analyze, compose, publish. Phases run strictly sequentially.
type Pipeline struct {
	Aircraft   *adsb.Client
	News       *news.Fetcher
	Composer   *briefing.Composer
	Sink       *publish.Sink
	Thresholds threat.Thresholds
	Now        func() time.Time
}

// NewPipeline builds a pipeline with wall-clock time.
func NewPipeline(aircraft *adsb.Client, fetcher *news.Fetcher, composer *briefing.Composer, sink *publish.Sink, th threat.Thresholds) *Pipeline {
	return &Pipeline{
		Aircraft:   aircraft,
		News:       fetcher,
		Composer:   composer,
		Sink:       sink,
		Thresholds: th,
		Now:        time.Now,
	}
}

// RunCycle executes one full pass and returns the published document.
// Fetch failures arrive as empty inputs, never as errors; only the durable
// publish step can fail.
func (p *Pipeline) RunCycle(ctx context.Context) (types.BriefingDocument, error) {
	aircraft := p.Aircraft.FetchAircraft(ctx)
	log.Printf("cycle: got %d aircraft", len(aircraft))

	headlines := p.News.FetchAll(ctx)
	log.Printf("cycle: got %d headlines", len(headlines))

	analysis := analyze.BuildAnalysis(aircraft)
	summary := p.Composer.Compose(ctx, analysis, headlines)

	doc := BuildDocument(analysis, summary, p.Thresholds, p.Now().UTC())
	if err := p.Sink.Write(ctx, doc); err != nil {
		return doc, err
	}

	log.Printf("cycle: done, threat %s", doc.ThreatLevel)
	return doc, nil
}

// BuildDocument assembles the published snapshot. The top-level threat_level
// uses the compact rule set; the fallback narrative uses the detailed one.
func BuildDocument(analysis types.Analysis, summary string, th threat.Thresholds, now time.Time) types.BriefingDocument {
	return types.BriefingDocument{
		GeneratedUTC: now.Format("2006-01-02T15:04:05Z"),
		GeneratedTS:  now.Unix(),
		ThreatLevel:  threat.AssessCompact(analysis, th),
		Summary:      summary,
		Stats: types.BriefingStats{
			Total:           analysis.Total,
			Counts:          analysis.Counts,
			Types:           analysis.Types,
			AdversaryActive: len(analysis.AdversaryDetails),
			ZonesActive:     len(analysis.ZoneActivity),
			ZoneNames:       analysis.ZoneActivity,
		},
	}
}

// SafeRun isolates one cycle: any error or panic is logged and the schedule
// proceeds to the next fixed interval. No backoff, no jitter.
func (p *Pipeline) SafeRun(ctx context.Context) {
	cycleID := uuid.NewString()[:8]
	log.Printf("cycle %s: starting", cycleID)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("cycle %s: panic recovered: %v", cycleID, r)
		}
	}()

	if _, err := p.RunCycle(ctx); err != nil {
		log.Printf("cycle %s: publish failed: %v", cycleID, err)
	}
}

// InitCronJobs runs one cycle immediately, then schedules the pipeline at
// the fixed interval. The returned cron is already started.
func InitCronJobs(p *Pipeline, interval time.Duration) *cron.Cron {
	log.Println("Starting cron jobs -------------------------------------------------------")

	p.SafeRun(context.Background())

	c := cron.New()
	_, err := c.AddFunc("@every "+interval.String(), func() {
		p.SafeRun(context.Background())
	})
	if err != nil {
		log.Println("Error scheduling briefing cycle:", err)
	}

	c.Start()
	return c
}
