// Package controller owns the page-level state of the client: what each
// view shows, whether it is busy, and how request failures degrade into
// placeholder content or messages.
package controller

import (
	"context"

	"github.com/zappabad/news2option/internal/domain"
)

// NewsGateway is the part of the API the news list needs.
type NewsGateway interface {
	ListRecentNews(ctx context.Context) ([]domain.News, error)
	SearchNews(ctx context.Context, query string) ([]domain.News, error)
	TriggerNewsCollection(ctx context.Context) error
}

// AnalysisGateway is the part of the API the analysis view needs.
type AnalysisGateway interface {
	GetAnalysisByID(ctx context.Context, id int64) (domain.NewsAnalysis, error)
	GetNewsByID(ctx context.Context, id int64) (domain.News, error)
}

// RecommendationGateway is the part of the API the recommendation view needs.
type RecommendationGateway interface {
	GetLatestRecommendation(ctx context.Context) (domain.DailyInvestmentRecommendation, error)
	GetRecommendationByDate(ctx context.Context, date domain.Date) (domain.DailyInvestmentRecommendation, error)
	TriggerRecommendationGeneration(ctx context.Context) error
}
