// Package api is the REST client for the news2option backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/domain"
)

// RequestIDHeader carries a per-request id the backend can log.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 512

// Client talks to the backend over HTTP and decodes its JSON entities.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     logrus.FieldLogger
}

var (
	_ controller.NewsGateway           = (*Client)(nil)
	_ controller.AnalysisGateway       = (*Client)(nil)
	_ controller.RecommendationGateway = (*Client)(nil)
)

// NewClient creates a Client. A nil httpClient gets a client with cfg's
// timeout; a nil log discards output.
func NewClient(cfg Config, httpClient *http.Client, log logrus.FieldLogger) *Client {
	cfg = cfg.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	c := &Client{
		cfg:  cfg,
		http: httpClient,
		log:  log.WithField("component", "api"),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	return c
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// --- News ---

// ListRecentNews fetches the most recently published news.
func (c *Client) ListRecentNews(ctx context.Context) ([]domain.News, error) {
	var out []domain.News
	if err := c.do(ctx, http.MethodGet, "/news/recent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListNews fetches every stored news item.
func (c *Client) ListNews(ctx context.Context) ([]domain.News, error) {
	var out []domain.News
	if err := c.do(ctx, http.MethodGet, "/news", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchNews fetches news whose title contains query.
func (c *Client) SearchNews(ctx context.Context, query string) ([]domain.News, error) {
	q := url.Values{}
	q.Set("query", query)

	var out []domain.News
	if err := c.do(ctx, http.MethodGet, "/news/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNewsByID fetches one news item.
func (c *Client) GetNewsByID(ctx context.Context, id int64) (domain.News, error) {
	var out domain.News
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/news/%d", id), nil, &out); err != nil {
		return domain.News{}, err
	}
	return out, nil
}

// TriggerNewsCollection asks the server to ingest new articles. The
// response body is discarded.
func (c *Client) TriggerNewsCollection(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/news/collect", nil, nil)
}

// --- Analysis ---

// ListAnalyses fetches every stored analysis.
func (c *Client) ListAnalyses(ctx context.Context) ([]domain.NewsAnalysis, error) {
	return c.listAnalyses(ctx, "/analysis")
}

// ListRecentAnalyses fetches the most recent analyses.
func (c *Client) ListRecentAnalyses(ctx context.Context) ([]domain.NewsAnalysis, error) {
	return c.listAnalyses(ctx, "/analysis/recent")
}

func (c *Client) listAnalyses(ctx context.Context, path string) ([]domain.NewsAnalysis, error) {
	var out []domain.NewsAnalysis
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, invalid(path, fmt.Errorf("[%d]: %w", i, err))
		}
	}
	return out, nil
}

// GetAnalysisByID fetches the full analysis with the given id.
func (c *Client) GetAnalysisByID(ctx context.Context, id int64) (domain.NewsAnalysis, error) {
	path := fmt.Sprintf("/analysis/%d", id)

	var out domain.NewsAnalysis
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.NewsAnalysis{}, err
	}
	if err := out.Validate(); err != nil {
		return domain.NewsAnalysis{}, invalid(path, err)
	}
	return out, nil
}

// --- Recommendations ---

// ListRecommendations fetches every stored daily recommendation.
func (c *Client) ListRecommendations(ctx context.Context) ([]domain.DailyInvestmentRecommendation, error) {
	const path = "/recommendations"

	var out []domain.DailyInvestmentRecommendation
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, invalid(path, fmt.Errorf("[%d]: %w", i, err))
		}
	}
	return out, nil
}

// GetLatestRecommendation fetches the newest daily recommendation.
func (c *Client) GetLatestRecommendation(ctx context.Context) (domain.DailyInvestmentRecommendation, error) {
	return c.getRecommendation(ctx, "/recommendations/latest")
}

// GetRecommendationByDate fetches the recommendation for a calendar day.
func (c *Client) GetRecommendationByDate(ctx context.Context, date domain.Date) (domain.DailyInvestmentRecommendation, error) {
	return c.getRecommendation(ctx, "/recommendations/date/"+url.PathEscape(date.String()))
}

func (c *Client) getRecommendation(ctx context.Context, path string) (domain.DailyInvestmentRecommendation, error) {
	var out domain.DailyInvestmentRecommendation
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.DailyInvestmentRecommendation{}, err
	}
	if err := out.Validate(); err != nil {
		return domain.DailyInvestmentRecommendation{}, invalid(path, err)
	}
	return out, nil
}

// TriggerRecommendationGeneration asks the server to synthesize a new
// daily recommendation. The server answers with plain text, which is
// discarded.
func (c *Client) TriggerRecommendationGeneration(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/recommendations/generate", nil, nil)
}

// --- transport ---

func invalid(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, path, err)
}

// do sends one request and decodes a JSON body into out. A nil out drains
// and discards the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: rate limit: %w", method, path, err)
		}
	}

	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set(RequestIDHeader, reqID)

	log := c.log.WithFields(logrus.Fields{
		"request_id": reqID,
		"method":     method,
		"path":       path,
	})

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.WithError(err).Warn("failed to close response body")
		}
	}()

	log.WithFields(logrus.Fields{
		"status":  res.StatusCode,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("request completed")

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return invalid(path, errors.New("empty body"))
		}
		return invalid(path, err)
	}
	return nil
}
