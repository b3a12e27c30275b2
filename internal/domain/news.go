package domain

// NewsID identifies a news item on the server. Placeholder items use
// non-positive ids.
type NewsID = int64

// News is a collected financial news article.
type News struct {
	ID          NewsID   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	PublishedAt DateTime `json:"publishedAt"`
	CollectedAt DateTime `json:"collectedAt"`
}

// Navigable reports whether the item exists on the server and can be
// opened in the analysis view.
func (n News) Navigable() bool {
	return n.ID > 0
}
