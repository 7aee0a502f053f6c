package briefing

import (
	"context"
	"log"
	"strings"
	"time"

	"mil-briefing/threat"
	"mil-briefing/types"
)

const (
	generateTimeout = 30 * time.Second
	maxTokens       = 500
	temperature     = 0.3
)

// TextGenerator is the generative backend contract. Implementations may
// fail; the composer treats any error, timeout, or empty response as the
// signal to fall back.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}

// Composer renders an analysis plus recent headlines into narrative text.
// It prefers the generative backend and degrades to the deterministic
// template on any failure. Compose never errors and never returns empty
// prose.
type Composer struct {
	Generator  TextGenerator // nil when no backend is configured
	Thresholds threat.Thresholds
}

// NewComposer builds a composer. A nil generator pins it to the
// deterministic path.
func NewComposer(gen TextGenerator, th threat.Thresholds) *Composer {
	return &Composer{Generator: gen, Thresholds: th}
}

// Compose produces the briefing text for one cycle.
func (c *Composer) Compose(ctx context.Context, analysis types.Analysis, headlines []types.NewsItem) string {
	if c.Generator != nil {
		if text, ok := c.generate(ctx, analysis, headlines); ok {
			return text
		}
	}
	return ComposeFallback(analysis, headlines, c.Thresholds)
}

// generate runs the generative strategy, absorbing every failure mode
// (error, empty response, panic) into a fallback signal.
func (c *Composer) generate(ctx context.Context, analysis types.Analysis, headlines []types.NewsItem) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("briefing: generator panicked, using fallback: %v", r)
			text, ok = "", false
		}
	}()

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	prompt := BuildPrompt(analysis, headlines)
	out, err := c.Generator.GenerateText(genCtx, prompt, maxTokens, temperature)
	if err != nil {
		log.Printf("briefing: generator failed, using fallback: %v", err)
		return "", false
	}
	out = strings.TrimSpace(out)
	if out == "" {
		log.Printf("briefing: generator returned empty text, using fallback")
		return "", false
	}
	return out, true
}

// topHeadlines renders up to n labeled headlines, one per line.
func topHeadlines(headlines []types.NewsItem, n int) string {
	if len(headlines) == 0 {
		return ""
	}
	if len(headlines) > n {
		headlines = headlines[:n]
	}
	lines := make([]string, 0, len(headlines))
	for _, h := range headlines {
		lines = append(lines, h.Labeled())
	}
	return strings.Join(lines, "\n")
}

func joinZones(zones []string) string {
	return strings.Join(zones, "; ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
