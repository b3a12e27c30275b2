package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/zappabad/news2option/internal/domain"
)

// OutcomeKind is the terminal state of an analysis load.
type OutcomeKind int

const (
	// OutcomeNone means nothing has been loaded yet.
	OutcomeNone OutcomeKind = iota
	// OutcomeResolved carries the full analysis.
	OutcomeResolved
	// OutcomePartial carries only the news item and a soft warning.
	OutcomePartial
	// OutcomeFailed carries a hard error and no data.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeResolved:
		return "resolved"
	case OutcomePartial:
		return "partial"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of the analysis fallback chain.
type Outcome struct {
	Kind     OutcomeKind
	Analysis *domain.NewsAnalysis
	// News is the article to display: the analysis' own news when
	// resolved, the bare item when partial, nil when failed.
	News *domain.News
	// Message is the soft or hard error text.
	Message string
	// Cause holds the request errors behind a partial or failed outcome.
	Cause error
}

// ResolveAnalysis tries the full analysis for id and falls back to the
// bare news item. The fallback request is only made when the first fails.
func ResolveAnalysis(ctx context.Context, gw AnalysisGateway, id int64) Outcome {
	analysis, err := gw.GetAnalysisByID(ctx, id)
	if err == nil {
		n := analysis.News
		return Outcome{Kind: OutcomeResolved, Analysis: &analysis, News: &n}
	}

	item, newsErr := gw.GetNewsByID(ctx, id)
	if newsErr == nil {
		return Outcome{Kind: OutcomePartial, News: &item, Message: MsgNoAnalysis, Cause: err}
	}

	return Outcome{Kind: OutcomeFailed, Message: MsgLoadFailed, Cause: errors.Join(err, newsErr)}
}

// AnalysisState is a snapshot of the analysis view.
type AnalysisState struct {
	NewsID  int64
	Loading bool
	Outcome Outcome
}

// AnalysisDetailController loads the analysis of one news item.
type AnalysisDetailController struct {
	gw  AnalysisGateway
	opt options

	mu    sync.RWMutex
	state AnalysisState
}

// NewAnalysisDetailController creates a controller over gw.
func NewAnalysisDetailController(gw AnalysisGateway, opts ...Option) *AnalysisDetailController {
	return &AnalysisDetailController{
		gw:  gw,
		opt: buildOptions("analysis_detail", opts),
	}
}

// Snapshot returns a copy of the current state.
func (c *AnalysisDetailController) Snapshot() AnalysisState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Open loads the analysis for a raw route parameter. A missing or
// malformed id is ignored.
func (c *AnalysisDetailController) Open(ctx context.Context, raw string) error {
	id, ok := ParseNewsID(raw)
	if !ok {
		return nil
	}
	return c.Load(ctx, id)
}

// Load runs the fallback chain for id and stores its outcome.
func (c *AnalysisDetailController) Load(ctx context.Context, id int64) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state.Loading = true
	c.state.NewsID = id
	c.state.Outcome = Outcome{}
	c.mu.Unlock()
	defer end(&c.mu, &c.state.Loading)

	out := ResolveAnalysis(ctx, c.gw, id)

	log := c.opt.log.WithField("news_id", id)
	switch out.Kind {
	case OutcomePartial:
		log.WithError(out.Cause).Info("analysis unavailable, showing news only")
	case OutcomeFailed:
		log.WithError(out.Cause).Warn("load news and analysis failed")
	}

	c.mu.Lock()
	c.state.Outcome = out
	c.mu.Unlock()
	return nil
}
