package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/zappabad/news2option/internal/domain"
)

var (
	errUnavailable = errors.New("service unavailable")
	fixedNow       = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
)

func clock() time.Time { return fixedNow }

type fakeNewsGateway struct {
	ListRecentNewsFunc        func(ctx context.Context) ([]domain.News, error)
	SearchNewsFunc            func(ctx context.Context, query string) ([]domain.News, error)
	TriggerNewsCollectionFunc func(ctx context.Context) error

	listCalls    atomic.Int32
	collectCalls atomic.Int32
}

func (f *fakeNewsGateway) ListRecentNews(ctx context.Context) ([]domain.News, error) {
	f.listCalls.Add(1)
	if f.ListRecentNewsFunc != nil {
		return f.ListRecentNewsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeNewsGateway) SearchNews(ctx context.Context, query string) ([]domain.News, error) {
	if f.SearchNewsFunc != nil {
		return f.SearchNewsFunc(ctx, query)
	}
	return nil, nil
}

func (f *fakeNewsGateway) TriggerNewsCollection(ctx context.Context) error {
	f.collectCalls.Add(1)
	if f.TriggerNewsCollectionFunc != nil {
		return f.TriggerNewsCollectionFunc(ctx)
	}
	return nil
}

type fakeAnalysisGateway struct {
	GetAnalysisByIDFunc func(ctx context.Context, id int64) (domain.NewsAnalysis, error)
	GetNewsByIDFunc     func(ctx context.Context, id int64) (domain.News, error)

	analysisCalls atomic.Int32
	newsCalls     atomic.Int32
}

func (f *fakeAnalysisGateway) GetAnalysisByID(ctx context.Context, id int64) (domain.NewsAnalysis, error) {
	f.analysisCalls.Add(1)
	if f.GetAnalysisByIDFunc != nil {
		return f.GetAnalysisByIDFunc(ctx, id)
	}
	return domain.NewsAnalysis{}, errUnavailable
}

func (f *fakeAnalysisGateway) GetNewsByID(ctx context.Context, id int64) (domain.News, error) {
	f.newsCalls.Add(1)
	if f.GetNewsByIDFunc != nil {
		return f.GetNewsByIDFunc(ctx, id)
	}
	return domain.News{}, errUnavailable
}

type fakeRecommendationGateway struct {
	GetLatestFunc   func(ctx context.Context) (domain.DailyInvestmentRecommendation, error)
	GetByDateFunc   func(ctx context.Context, date domain.Date) (domain.DailyInvestmentRecommendation, error)
	TriggerGenerate func(ctx context.Context) error
}

func (f *fakeRecommendationGateway) GetLatestRecommendation(ctx context.Context) (domain.DailyInvestmentRecommendation, error) {
	if f.GetLatestFunc != nil {
		return f.GetLatestFunc(ctx)
	}
	return domain.DailyInvestmentRecommendation{}, errUnavailable
}

func (f *fakeRecommendationGateway) GetRecommendationByDate(ctx context.Context, date domain.Date) (domain.DailyInvestmentRecommendation, error) {
	if f.GetByDateFunc != nil {
		return f.GetByDateFunc(ctx, date)
	}
	return domain.DailyInvestmentRecommendation{}, errUnavailable
}

func (f *fakeRecommendationGateway) TriggerRecommendationGeneration(ctx context.Context) error {
	if f.TriggerGenerate != nil {
		return f.TriggerGenerate(ctx)
	}
	return nil
}
