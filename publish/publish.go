package publish

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// InitFirestore builds a Firestore client from base64-encoded service
// account credentials. An empty credential string disables the mirror.
func InitFirestore(ctx context.Context, encodedCreds string) (*firestore.Client, error) {
	if encodedCreds == "" {
		return nil, nil
	}

	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firestore credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}
	return client, nil
}

// Sink durably writes the briefing document to a local JSON file and
// best-effort mirrors it to Firestore. A mirror failure is logged, never
// fatal; the next cycle republishes current state anyway.
type Sink struct {
	Path       string
	Mirror     *firestore.Client // nil disables mirroring
	Collection string
	Doc        string

	mu   sync.Mutex
	last interface{}
}

// NewSink builds a sink for the given local path and optional mirror.
func NewSink(path string, mirror *firestore.Client, collection, doc string) *Sink {
	return &Sink{Path: path, Mirror: mirror, Collection: collection, Doc: doc}
}

// Write replaces the stored document. The local write is atomic
// (temp file + rename); only its failure is returned.
func (s *Sink) Write(ctx context.Context, document interface{}) error {
	if err := writeJSONAtomic(s.Path, document); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	log.Printf("publish: wrote %s", s.Path)

	s.mu.Lock()
	s.last = document
	s.mu.Unlock()

	if s.Mirror != nil {
		if _, err := s.Mirror.Collection(s.Collection).Doc(s.Doc).Set(ctx, document); err != nil {
			log.Printf("publish: mirror to %s/%s failed: %v", s.Collection, s.Doc, err)
		}
	}
	return nil
}

// Latest returns the most recently written document, or nil before the
// first successful write.
func (s *Sink) Latest() interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func writeJSONAtomic(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".briefing-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
