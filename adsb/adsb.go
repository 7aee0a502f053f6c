package adsb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"mil-briefing/types"
)

const (
	fetchTimeout = 15 * time.Second
	userAgent    = "mil-briefing/1.0"
)

// feedResponse is the envelope the military-aircraft feed returns.
type feedResponse struct {
	Aircraft []types.AircraftRecord `json:"ac"`
}

// Client fetches the live military aircraft feed.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient builds a feed client for the given endpoint.
func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchAircraft returns the current record list. It never fails to its
// caller: any transport or decode error is logged and yields an empty list,
// which downstream treats as a valid "no data" cycle.
func (c *Client) FetchAircraft(ctx context.Context) []types.AircraftRecord {
	records, err := c.fetch(ctx)
	if err != nil {
		log.Printf("adsb: fetch failed: %v", err)
		return nil
	}
	return records
}

func (c *Client) fetch(ctx context.Context) ([]types.AircraftRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var out feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	return out.Aircraft, nil
}
