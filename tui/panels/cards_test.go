package panels

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/domain"
	"github.com/zappabad/news2option/internal/news"
)

var published = domain.NewDateTime(time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local))

func liveNews() domain.News {
	return domain.News{
		ID:          42,
		Title:       "Fed holds",
		Content:     "<p>Rates <b>unchanged</b>.</p>",
		Source:      "Reuters",
		URL:         "https://ex.com/a",
		PublishedAt: published,
	}
}

func TestRenderNewsCard(t *testing.T) {
	t.Parallel()

	out := RenderNewsCard(liveNews(), 80, false)

	assert.Contains(t, out, "Fed holds")
	assert.Contains(t, out, "Source: Reuters")
	assert.Contains(t, out, "2025-03-14 09:30")
	assert.Contains(t, out, "Rates unchanged.")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "view analysis")
	assert.Contains(t, out, "https://ex.com/a")
}

func TestRenderNewsCard_Placeholder(t *testing.T) {
	t.Parallel()

	item := news.FallbackNews(time.Now())[0]
	out := RenderNewsCard(item, 80, true)

	assert.Contains(t, out, PlaceholderHint)
	assert.NotContains(t, out, "view analysis")
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", FormatTime(domain.DateTime{}))
	assert.Equal(t, "2025-03-14 09:30", FormatTime(published))
}

func analysisOutcome() controller.Outcome {
	a := domain.NewsAnalysis{
		ID:              1,
		News:            liveNews(),
		AnalysisContent: "Banks steady.",
		AnalyzedAt:      published,
		IndustryImpacts: []domain.IndustryImpact{{
			IndustryName: "Banking",
			ImpactType:   domain.ImpactPositive,
			ImpactScore:  7,
			CompanyImpacts: []domain.CompanyImpact{
				{CompanyName: "JPMorgan", StockSymbol: "JPM", ImpactType: domain.ImpactNegative, ImpactScore: 6.5},
			},
		}},
	}
	n := a.News
	return controller.Outcome{Kind: controller.OutcomeResolved, Analysis: &a, News: &n}
}

func TestRenderAnalysisOutcome_Precedence(t *testing.T) {
	t.Parallel()

	resolved := RenderAnalysisOutcome(analysisOutcome(), 100)
	assert.Contains(t, resolved, "Banks steady.")
	assert.Contains(t, resolved, "Banking")
	assert.Contains(t, resolved, "POSITIVE")
	assert.Contains(t, resolved, "Impact: 7/10")
	assert.Contains(t, resolved, "JPMorgan (JPM)")
	assert.Contains(t, resolved, "6.5/10")
	assert.NotContains(t, resolved, controller.MsgNoAnalysis)

	item := liveNews()
	partial := RenderAnalysisOutcome(controller.Outcome{
		Kind:    controller.OutcomePartial,
		News:    &item,
		Message: controller.MsgNoAnalysis,
	}, 100)
	assert.Contains(t, partial, "Fed holds")
	assert.Contains(t, partial, "Rates unchanged.")
	assert.NotContains(t, partial, "Industry Impacts")

	failed := RenderAnalysisOutcome(controller.Outcome{
		Kind:    controller.OutcomeFailed,
		Message: controller.MsgLoadFailed,
		Cause:   errors.New("boom"),
	}, 100)
	assert.NotContains(t, failed, "Fed holds")
	assert.NotContains(t, failed, "boom")

	assert.Empty(t, RenderAnalysisOutcome(controller.Outcome{}, 100))
}

func recommendation() domain.DailyInvestmentRecommendation {
	date, _ := domain.ParseDate("2025-03-14")
	return domain.DailyInvestmentRecommendation{
		ID:               3,
		Date:             date,
		Summary:          "Tech leads.",
		OverallSentiment: domain.SentimentBearish,
		RecommendedInvestments: []domain.RecommendedInvestment{
			{IndustryName: "Semis", CompanyName: "NVIDIA", StockSymbol: "NVDA", RecommendationType: domain.RecommendHold, ConfidenceScore: 8, Rationale: "Demand."},
		},
	}
}

func TestRenderRecommendationCard(t *testing.T) {
	t.Parallel()

	out := RenderRecommendationCard(recommendation(), 100)

	assert.Contains(t, out, "2025-03-14")
	assert.Contains(t, out, "BEARISH")
	assert.Contains(t, out, "Tech leads.")
	assert.Contains(t, out, "NVIDIA")
	assert.Contains(t, out, "Semis (NVDA)")
	assert.Contains(t, out, "HOLD")
	assert.Contains(t, out, "Confidence: 8/10")
	assert.Contains(t, out, "Demand.")
}

func TestRenderRecommendationState(t *testing.T) {
	t.Parallel()

	rec := recommendation()

	empty := RenderRecommendationState(controller.RecommendationState{
		ErrorKind: controller.ErrorEmpty,
		Error:     "No recommendation.",
	}, 100)
	assert.Contains(t, empty, "No recommendation.")
	assert.Contains(t, empty, GenerateHint)

	failed := RenderRecommendationState(controller.RecommendationState{
		Recommendation: &rec,
		ErrorKind:      controller.ErrorGenerateFailed,
		Error:          "Generation failed.",
	}, 100)
	assert.Contains(t, failed, "Generation failed.")
	assert.Contains(t, failed, "Tech leads.", "previous recommendation stays visible")
	assert.NotContains(t, failed, GenerateHint)

	ok := RenderRecommendationState(controller.RecommendationState{Recommendation: &rec}, 100)
	assert.Contains(t, ok, "Tech leads.")
}
