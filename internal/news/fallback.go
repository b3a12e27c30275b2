// Package news holds the client-side policy for news listings: the
// placeholder list shown when the server has nothing, and text helpers
// for rendering article bodies.
package news

import (
	"time"

	"github.com/zappabad/news2option/internal/domain"
)

type placeholder struct {
	title   string
	content string
	source  string
	age     time.Duration
}

var placeholders = []placeholder{
	{
		title:   "Global Markets Show Mixed Signals Amid Economic Uncertainty",
		content: "Financial markets worldwide are displaying mixed performance as investors navigate through ongoing economic uncertainties. Key indicators suggest cautious optimism in some sectors while others face headwinds from inflation concerns and geopolitical tensions.",
		source:  "Financial Times",
	},
	{
		title:   "Technology Sector Leads Innovation in Sustainable Finance",
		content: "Leading technology companies are pioneering new approaches to sustainable finance, with artificial intelligence and blockchain technologies driving efficiency improvements in green investment strategies.",
		source:  "Bloomberg",
		age:     time.Hour,
	},
	{
		title:   "Central Banks Signal Coordinated Approach to Interest Rates",
		content: "Major central banks are indicating a more coordinated approach to monetary policy, with recent statements suggesting alignment on interest rate strategies to combat inflation while supporting economic growth.",
		source:  "Reuters",
		age:     2 * time.Hour,
	},
	{
		title:   "Emerging Markets Attract Increased Investment Flows",
		content: "Emerging market economies are experiencing renewed investor interest as global capital seeks higher yields and growth opportunities, with particular focus on Asian and Latin American markets.",
		source:  "Wall Street Journal",
		age:     3 * time.Hour,
	},
}

// PlaceholderURL is the origin URL of every placeholder item.
const PlaceholderURL = "#"

// FallbackNews returns a fresh copy of the placeholder list, timestamped
// relative to now. Ids are negative so the items are never navigable.
func FallbackNews(now time.Time) []domain.News {
	out := make([]domain.News, len(placeholders))
	for i, p := range placeholders {
		out[i] = domain.News{
			ID:          -int64(i + 1),
			Title:       p.title,
			Content:     p.content,
			Source:      p.source,
			URL:         PlaceholderURL,
			PublishedAt: domain.NewDateTime(now.Add(-p.age)),
			CollectedAt: domain.NewDateTime(now),
		}
	}
	return out
}

// ResolveNewsList turns the result of a recent-news request into the list
// to display. A non-empty successful result is returned as is; an empty
// result or any error yields the placeholder list and fallback=true.
func ResolveNewsList(items []domain.News, err error, now time.Time) (resolved []domain.News, fallback bool) {
	if err != nil || len(items) == 0 {
		return FallbackNews(now), true
	}
	resolved = make([]domain.News, len(items))
	copy(resolved, items)
	return resolved, false
}
