package news

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"mil-briefing/types"
)

// Source is one RSS feed to poll.
type Source struct {
	Label string
	URL   string
}

// DefaultSources are the defense-news feeds the updater polls each cycle.
var DefaultSources = []Source{
	{Label: "USNI News", URL: "https://news.usni.org/feed"},
	{Label: "Naval News", URL: "https://www.navalnews.com/feed/"},
	{Label: "Defense News", URL: "https://www.defensenews.com/arc/outboundfeeds/rss/"},
	{Label: "Task & Purpose", URL: "https://taskandpurpose.com/feed/"},
	{Label: "Military Times", URL: "https://www.militarytimes.com/arc/outboundfeeds/rss/"},
}

const (
	perSourceTimeout = 10 * time.Second
	itemsPerSource   = 10
)

// Fetcher pulls and categorizes headlines. Every source failure is soft: a
// failing feed contributes nothing and the rest are still returned.
type Fetcher struct {
	Sources []Source
	parser  *gofeed.Parser
}

// NewFetcher builds a Fetcher over the given sources (DefaultSources when
// nil).
func NewFetcher(sources []Source) *Fetcher {
	if sources == nil {
		sources = DefaultSources
	}
	return &Fetcher{Sources: sources, parser: gofeed.NewParser()}
}

// FetchAll pulls every source, categorizes each headline, and returns the
// combined list with categorized articles sorted first. Never returns an
// error; a cycle with all sources down simply gets an empty list.
func (f *Fetcher) FetchAll(ctx context.Context) []types.NewsItem {
	var all []types.NewsItem
	for _, src := range f.Sources {
		items := f.fetchSource(ctx, src)
		log.Printf("news: %s: %d items", src.Label, len(items))
		all = append(all, items...)
	}

	// Articles with categories first, then by published string.
	sort.SliceStable(all, func(i, j int) bool {
		ci, cj := len(all[i].Categories) > 0, len(all[j].Categories) > 0
		if ci != cj {
			return ci
		}
		return all[i].Published < all[j].Published
	})

	return all
}

func (f *Fetcher) fetchSource(ctx context.Context, src Source) []types.NewsItem {
	fetchCtx, cancel := context.WithTimeout(ctx, perSourceTimeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(src.URL, fetchCtx)
	if err != nil {
		log.Printf("news: failed to fetch %s: %v", src.Label, err)
		return nil
	}

	var items []types.NewsItem
	for _, entry := range feed.Items {
		if len(items) >= itemsPerSource {
			break
		}
		if entry == nil || entry.Title == "" {
			continue
		}
		items = append(items, types.NewsItem{
			Title:      entry.Title,
			Link:       entry.Link,
			Published:  entry.Published,
			Source:     src.Label,
			Categories: Categorize(entry.Title),
		})
	}
	return items
}
