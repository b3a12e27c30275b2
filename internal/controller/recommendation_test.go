package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/news2option/internal/domain"
)

func sampleRecommendation(id int64) domain.DailyInvestmentRecommendation {
	return domain.DailyInvestmentRecommendation{
		ID:               id,
		Summary:          "Tech leads.",
		OverallSentiment: domain.SentimentBullish,
		RecommendedInvestments: []domain.RecommendedInvestment{
			{CompanyName: "NVIDIA", StockSymbol: "NVDA", RecommendationType: domain.RecommendBuy, ConfidenceScore: 8},
		},
	}
}

func TestRecommendationController_LoadFailure(t *testing.T) {
	t.Parallel()

	c := NewRecommendationController(&fakeRecommendationGateway{})
	require.NoError(t, c.Load(context.Background()))

	s := c.Snapshot()
	assert.Nil(t, s.Recommendation)
	assert.Equal(t, ErrorEmpty, s.ErrorKind)
	assert.Equal(t, MsgNoRecommendation, s.Error)
	assert.False(t, s.Loading)
}

func TestRecommendationController_GenerateThenReload(t *testing.T) {
	t.Parallel()

	generated := false
	gw := &fakeRecommendationGateway{
		GetLatestFunc: func(context.Context) (domain.DailyInvestmentRecommendation, error) {
			if !generated {
				return domain.DailyInvestmentRecommendation{}, errUnavailable
			}
			return sampleRecommendation(1), nil
		},
		TriggerGenerate: func(context.Context) error {
			generated = true
			return nil
		},
	}
	c := NewRecommendationController(gw)

	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, ErrorEmpty, c.Snapshot().ErrorKind)

	require.NoError(t, c.Generate(context.Background()))

	s := c.Snapshot()
	require.NotNil(t, s.Recommendation)
	assert.Equal(t, int64(1), s.Recommendation.ID)
	assert.Empty(t, s.Error)
	assert.Equal(t, ErrorNone, s.ErrorKind)
	assert.False(t, s.Generating)
	assert.False(t, s.Loading)
}

func TestRecommendationController_GenerateFailureKeepsRecommendation(t *testing.T) {
	t.Parallel()

	loads := 0
	gw := &fakeRecommendationGateway{
		GetLatestFunc: func(context.Context) (domain.DailyInvestmentRecommendation, error) {
			loads++
			return sampleRecommendation(5), nil
		},
		TriggerGenerate: func(context.Context) error { return errUnavailable },
	}
	c := NewRecommendationController(gw)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Generate(context.Background()))

	s := c.Snapshot()
	require.NotNil(t, s.Recommendation)
	assert.Equal(t, sampleRecommendation(5), *s.Recommendation)
	assert.Equal(t, ErrorGenerateFailed, s.ErrorKind)
	assert.Equal(t, MsgGenerateFailed, s.Error)
	assert.NotEqual(t, MsgNoRecommendation, s.Error)
	assert.False(t, s.Generating)
	assert.Equal(t, 1, loads, "no reload after a failed generation")
}

func TestRecommendationController_GenerateBusy(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	gw := &fakeRecommendationGateway{
		GetLatestFunc: func(context.Context) (domain.DailyInvestmentRecommendation, error) {
			return sampleRecommendation(2), nil
		},
		TriggerGenerate: func(context.Context) error {
			close(started)
			<-release
			return nil
		},
	}
	c := NewRecommendationController(gw)

	done := make(chan error, 1)
	go func() { done <- c.Generate(context.Background()) }()

	<-started
	assert.True(t, c.Snapshot().Generating)
	assert.ErrorIs(t, c.Generate(context.Background()), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Snapshot().Generating)
}

func TestRecommendationController_LoadByDate(t *testing.T) {
	t.Parallel()

	date, err := domain.ParseDate("2025-03-14")
	require.NoError(t, err)

	var asked domain.Date
	gw := &fakeRecommendationGateway{
		GetByDateFunc: func(_ context.Context, d domain.Date) (domain.DailyInvestmentRecommendation, error) {
			asked = d
			return domain.DailyInvestmentRecommendation{}, errUnavailable
		},
	}
	c := NewRecommendationController(gw)

	require.NoError(t, c.LoadByDate(context.Background(), date))

	s := c.Snapshot()
	assert.Equal(t, "2025-03-14", asked.String())
	assert.Equal(t, date, s.Date)
	assert.Nil(t, s.Recommendation)
	assert.Equal(t, ErrorEmpty, s.ErrorKind)
	assert.Equal(t, "No investment recommendation found for 2025-03-14.", s.Error)
}
