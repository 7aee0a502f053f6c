package types

// NewsItem is one headline pulled from a defense-news RSS feed.
// Categories is non-exclusive: a headline may match several or none.
type NewsItem struct {
	Title      string   `json:"title" firestore:"title"`
	Link       string   `json:"link" firestore:"link"`
	Published  string   `json:"published" firestore:"published"`
	Source     string   `json:"source" firestore:"source"`
	Categories []string `json:"categories" firestore:"categories"`
}

// HasCategory reports whether the item carries the given category tag.
func (n NewsItem) HasCategory(cat string) bool {
	for _, c := range n.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Labeled returns the headline prefixed with its source label, the form the
// briefing prompt and fallback composer both use.
func (n NewsItem) Labeled() string {
	return "[" + n.Source + "] " + n.Title
}
