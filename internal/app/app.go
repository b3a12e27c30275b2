// Package app wires the backend client and the view controllers.
package app

import (
	"sync"

	"github.com/zappabad/news2option/internal/api"
	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/logger"
	"github.com/zappabad/news2option/internal/platform/httpclient"
)

// App owns the client subsystems and manages their lifecycle.
type App struct {
	Log            *logger.Logger
	Client         *api.Client
	News           *controller.NewsListController
	Analysis       *controller.AnalysisDetailController
	Recommendation *controller.RecommendationController

	cfg Config
	mu  sync.Mutex
}

// New creates an App with the given configuration.
func New(cfg Config) (*App, error) {
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, log), nil
}

func newApp(cfg Config, log *logger.Logger) *App {
	a := &App{cfg: cfg, Log: log}

	a.Client = api.NewClient(cfg.API, httpclient.New(cfg.API.Timeout), log)

	opt := controller.WithLogger(log)
	a.News = controller.NewNewsListController(a.Client, opt)
	a.Analysis = controller.NewAnalysisDetailController(a.Client, opt)
	a.Recommendation = controller.NewRecommendationController(a.Client, opt)

	log.WithField("base_url", a.Client.BaseURL()).Debug("client ready")
	return a
}

// Config returns the configuration the App was built with.
func (a *App) Config() Config {
	return a.cfg
}

// Close flushes and closes the log file.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.Log == nil {
		return nil
	}
	return a.Log.Close()
}
