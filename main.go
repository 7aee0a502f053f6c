package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"mil-briefing/adsb"
	"mil-briefing/briefing"
	"mil-briefing/config"
	"mil-briefing/cronjobs"
	"mil-briefing/news"
	"mil-briefing/publish"
	"mil-briefing/routes"
	"mil-briefing/threat"
)

func main() {
	// Load .env file (optional in deployed environments)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	if cfg.OpenAIKey != "" {
		log.Println("OPENAI_API_KEY loaded")
	} else {
		log.Println("No OPENAI_API_KEY, briefings will use the deterministic composer")
	}

	ctx := context.Background()

	firestoreClient, err := publish.InitFirestore(ctx, cfg.FirebaseCreds)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore mirror: %v", err)
	}
	if firestoreClient != nil {
		defer firestoreClient.Close()
	} else {
		log.Println("No FIREBASE_CREDENTIALS, mirror disabled")
	}

	sink := publish.NewSink(cfg.BriefingPath, firestoreClient, cfg.MirrorCollection, cfg.MirrorDoc)
	generator := briefing.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel)
	composer := buildComposer(generator)

	pipeline := cronjobs.NewPipeline(
		adsb.NewClient(cfg.AircraftFeedURL),
		news.NewFetcher(nil),
		composer,
		sink,
		threat.Defaults,
	)

	c := cronjobs.InitCronJobs(pipeline, cfg.BriefingInterval)
	defer c.Stop()

	r := routes.SetupRouter(sink, pipeline)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// buildComposer keeps the nil-generator case explicit: a nil *OpenAIGenerator
// must become a nil interface so the composer skips the generative path.
func buildComposer(gen *briefing.OpenAIGenerator) *briefing.Composer {
	if gen == nil {
		return briefing.NewComposer(nil, threat.Defaults)
	}
	return briefing.NewComposer(gen, threat.Defaults)
}
