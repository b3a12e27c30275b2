package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zappabad/news2option/internal/domain"
)

// ErrorKind classifies the recommendation view's error message.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	// ErrorEmpty means no recommendation could be loaded; generating one
	// is the expected next step.
	ErrorEmpty
	// ErrorGenerateFailed means the generation request failed.
	ErrorGenerateFailed
)

// RecommendationState is a snapshot of the recommendation view.
type RecommendationState struct {
	Recommendation *domain.DailyInvestmentRecommendation
	// Date is the requested day, zero for the latest recommendation.
	Date       domain.Date
	Loading    bool
	Generating bool
	Error      string
	ErrorKind  ErrorKind
}

// RecommendationController loads the daily recommendation and triggers
// its generation.
type RecommendationController struct {
	gw  RecommendationGateway
	opt options

	mu    sync.RWMutex
	state RecommendationState
}

// NewRecommendationController creates a controller over gw.
func NewRecommendationController(gw RecommendationGateway, opts ...Option) *RecommendationController {
	return &RecommendationController{
		gw:  gw,
		opt: buildOptions("recommendation", opts),
	}
}

// Snapshot returns a copy of the current state.
func (c *RecommendationController) Snapshot() RecommendationState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Load fetches the latest recommendation.
func (c *RecommendationController) Load(ctx context.Context) error {
	return c.load(ctx, domain.Date{}, func(ctx context.Context) (domain.DailyInvestmentRecommendation, error) {
		return c.gw.GetLatestRecommendation(ctx)
	})
}

// LoadByDate fetches the recommendation synthesized for date.
func (c *RecommendationController) LoadByDate(ctx context.Context, date domain.Date) error {
	if date.IsZero() {
		return c.Load(ctx)
	}
	return c.load(ctx, date, func(ctx context.Context) (domain.DailyInvestmentRecommendation, error) {
		return c.gw.GetRecommendationByDate(ctx, date)
	})
}

func (c *RecommendationController) load(
	ctx context.Context,
	date domain.Date,
	fetch func(context.Context) (domain.DailyInvestmentRecommendation, error),
) error {
	if err := begin(&c.mu, &c.state.Loading); err != nil {
		return err
	}
	defer end(&c.mu, &c.state.Loading)

	c.mu.Lock()
	c.state.Date = date
	c.state.Error = ""
	c.state.ErrorKind = ErrorNone
	c.mu.Unlock()

	rec, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.opt.log.WithError(err).WithField("date", date.String()).Info("load recommendation failed")
		c.state.Recommendation = nil
		c.state.ErrorKind = ErrorEmpty
		c.state.Error = MsgNoRecommendation
		if !date.IsZero() {
			c.state.Error = fmt.Sprintf(msgNoRecommendationFor, date)
		}
		return nil
	}
	c.state.Recommendation = &rec
	return nil
}

// Generate asks the server for a new recommendation and reloads the
// latest one. A failed request keeps the current recommendation.
func (c *RecommendationController) Generate(ctx context.Context) error {
	if err := begin(&c.mu, &c.state.Generating); err != nil {
		return err
	}
	defer end(&c.mu, &c.state.Generating)

	c.mu.Lock()
	c.state.Error = ""
	c.state.ErrorKind = ErrorNone
	c.mu.Unlock()

	if err := c.gw.TriggerRecommendationGeneration(ctx); err != nil {
		c.opt.log.WithError(err).Warn("generate recommendation failed")

		c.mu.Lock()
		c.state.ErrorKind = ErrorGenerateFailed
		c.state.Error = MsgGenerateFailed
		c.mu.Unlock()
		return nil
	}

	if err := c.Load(ctx); err != nil && !errors.Is(err, ErrBusy) {
		return err
	}
	return nil
}
