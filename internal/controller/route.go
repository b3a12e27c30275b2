package controller

import (
	"strconv"
	"strings"
)

// Page is a top-level view of the client.
type Page int

const (
	PageNews Page = iota
	PageAnalysis
	PageRecommendations
)

func (p Page) String() string {
	switch p {
	case PageNews:
		return "news"
	case PageAnalysis:
		return "analysis"
	case PageRecommendations:
		return "recommendations"
	}
	return "unknown"
}

// Route is a navigation target. NewsID is only meaningful for PageAnalysis.
type Route struct {
	Page   Page
	NewsID int64
}

// NewsRoute is the news list.
func NewsRoute() Route { return Route{Page: PageNews} }

// AnalysisRoute is the detail view of one news item.
func AnalysisRoute(id int64) Route { return Route{Page: PageAnalysis, NewsID: id} }

// RecommendationsRoute is the recommendation view.
func RecommendationsRoute() Route { return Route{Page: PageRecommendations} }

// String renders the route as a path: "/", "/analysis/42", "/recommendations".
func (r Route) String() string {
	switch r.Page {
	case PageAnalysis:
		return "/analysis/" + strconv.FormatInt(r.NewsID, 10)
	case PageRecommendations:
		return "/recommendations"
	}
	return "/"
}

// ParseRoute reads a path produced by Route.String. Leading and trailing
// slashes are optional.
func ParseRoute(path string) (Route, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 1 && (parts[0] == "" || parts[0] == "news"):
		return NewsRoute(), true
	case len(parts) == 1 && parts[0] == "recommendations":
		return RecommendationsRoute(), true
	case len(parts) == 2 && parts[0] == "analysis":
		id, ok := ParseNewsID(parts[1])
		if !ok {
			return Route{}, false
		}
		return AnalysisRoute(id), true
	}
	return Route{}, false
}

// ParseNewsID parses a route parameter into a server news id. Only
// positive base-10 integers are accepted.
func ParseNewsID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
