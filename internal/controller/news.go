package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/zappabad/news2option/internal/domain"
	"github.com/zappabad/news2option/internal/news"
)

// NewsListState is a snapshot of the news list view.
type NewsListState struct {
	News []domain.News
	// UsingFallback is set while News holds the placeholder list.
	UsingFallback bool
	Loading       bool
	Collecting    bool
	// Query is the active search, empty for the recent-news listing.
	Query string
	// Notice is a transient message about a failed action.
	Notice string
}

// NewsListController loads the recent news listing and triggers
// server-side collection.
type NewsListController struct {
	gw  NewsGateway
	opt options

	mu    sync.RWMutex
	state NewsListState
}

// NewNewsListController creates a controller over gw.
func NewNewsListController(gw NewsGateway, opts ...Option) *NewsListController {
	return &NewsListController{
		gw:  gw,
		opt: buildOptions("news_list", opts),
	}
}

// Snapshot returns a copy of the current state.
func (c *NewsListController) Snapshot() NewsListState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	s.News = append([]domain.News(nil), c.state.News...)
	return s
}

// Load fetches recent news. An empty or failed result installs the
// placeholder list.
func (c *NewsListController) Load(ctx context.Context) error {
	if err := begin(&c.mu, &c.state.Loading); err != nil {
		return err
	}
	defer end(&c.mu, &c.state.Loading)

	items, err := c.gw.ListRecentNews(ctx)
	switch {
	case err != nil:
		c.opt.log.WithError(err).Warn("load recent news failed, showing placeholders")
	case len(items) == 0:
		c.opt.log.Info("no recent news, showing placeholders")
	}

	resolved, fallback := news.ResolveNewsList(items, err, c.opt.now())

	c.mu.Lock()
	c.state.News = resolved
	c.state.UsingFallback = fallback
	c.state.Query = ""
	c.state.Notice = ""
	c.mu.Unlock()
	return nil
}

// Collect asks the server to ingest news and reloads the list. When the
// request fails a populated list is kept and an empty one is replaced by
// the placeholder list.
func (c *NewsListController) Collect(ctx context.Context) error {
	if err := begin(&c.mu, &c.state.Collecting); err != nil {
		return err
	}
	defer end(&c.mu, &c.state.Collecting)

	c.mu.Lock()
	c.state.Notice = ""
	c.mu.Unlock()

	if err := c.gw.TriggerNewsCollection(ctx); err != nil {
		c.opt.log.WithError(err).Warn("collect news failed")

		c.mu.Lock()
		if len(c.state.News) == 0 {
			c.state.News = news.FallbackNews(c.opt.now())
			c.state.UsingFallback = true
		}
		c.state.Notice = MsgCollectFailed
		c.mu.Unlock()
		return nil
	}

	// A load already in flight will pick up the collected news.
	if err := c.Load(ctx); err != nil && !errors.Is(err, ErrBusy) {
		return err
	}
	return nil
}

// Search replaces the list with news matching query. A blank query
// reloads the recent listing. Search results are shown as returned, even
// when empty.
func (c *NewsListController) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Load(ctx)
	}

	if err := begin(&c.mu, &c.state.Loading); err != nil {
		return err
	}
	defer end(&c.mu, &c.state.Loading)

	items, err := c.gw.SearchNews(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.opt.log.WithError(err).WithField("query", query).Warn("search news failed")
		c.state.Notice = MsgSearchFailed
		return nil
	}
	c.state.News = append([]domain.News(nil), items...)
	c.state.UsingFallback = false
	c.state.Query = query
	c.state.Notice = ""
	return nil
}

// Select returns the analysis route for the item with id. Placeholder
// items have nothing to analyze, so selection is refused while the
// fallback list is shown.
func (c *NewsListController) Select(id int64) (Route, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state.UsingFallback || id <= 0 {
		return Route{}, false
	}
	return AnalysisRoute(id), true
}
