package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every externally supplied setting. It is built once in main
// and threaded into the scheduler and handlers; no package reads the
// environment after startup.
type Config struct {
	// Generative backend
	OpenAIKey   string
	OpenAIModel string

	// Sources
	AircraftFeedURL string

	// Publish targets
	BriefingPath     string // local JSON document the dashboard reads
	IntelPath        string // versioned intel-data document
	FirebaseCreds    string // base64 service-account JSON, empty disables mirror
	MirrorCollection string
	MirrorDoc        string

	// Run loop
	BriefingInterval time.Duration
	ListenAddr       string
}

const (
	defaultFeedURL    = "https://api.adsb.lol/v2/mil"
	defaultBriefing   = "data/briefing.json"
	defaultIntel      = "data/intel-data.json"
	defaultCollection = "briefings"
	defaultDoc        = "latest"
	defaultInterval   = 60 * time.Minute
	defaultAddr       = ":8080"
)

// Load reads the environment into a Config, substituting defaults for
// anything unset. Call godotenv.Load first if a .env file is in play.
func Load() Config {
	cfg := Config{
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      os.Getenv("OPENAI_MODEL"),
		AircraftFeedURL:  envOr("AIRCRAFT_FEED_URL", defaultFeedURL),
		BriefingPath:     envOr("BRIEFING_PATH", defaultBriefing),
		IntelPath:        envOr("INTEL_PATH", defaultIntel),
		FirebaseCreds:    os.Getenv("FIREBASE_CREDENTIALS"),
		MirrorCollection: envOr("MIRROR_COLLECTION", defaultCollection),
		MirrorDoc:        envOr("MIRROR_DOC", defaultDoc),
		BriefingInterval: defaultInterval,
		ListenAddr:       envOr("LISTEN_ADDR", defaultAddr),
	}

	if raw := os.Getenv("BRIEFING_INTERVAL_MINUTES"); raw != "" {
		if mins, err := strconv.Atoi(raw); err == nil && mins > 0 {
			cfg.BriefingInterval = time.Duration(mins) * time.Minute
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
