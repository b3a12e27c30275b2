package controller

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zappabad/news2option/internal/logger"
)

// ErrBusy is returned when an action is triggered while the same action
// is still running. Nothing else is ever returned by an action: request
// failures end up in the controller state.
var ErrBusy = errors.New("operation already in progress")

// User-facing messages.
const (
	MsgCollectFailed       = "Failed to collect news. Please try again later."
	MsgSearchFailed        = "Search failed. Please try again later."
	MsgNoAnalysis          = "No analysis available for this news article yet."
	MsgLoadFailed          = "Failed to load news or analysis. Please try again later."
	MsgNoRecommendation    = "No investment recommendations found. Generate a new recommendation."
	MsgGenerateFailed      = "Failed to generate recommendations. Please try again later."
	msgNoRecommendationFor = "No investment recommendation found for %s."
)

// Option configures a controller.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
	now func() time.Time
}

// WithLogger sets the logger used to report request failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithClock overrides time.Now, which timestamps placeholder content.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(component string, opts []Option) options {
	o := options{log: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.WithField("component", component)
	return o
}

// begin marks an action as running. The caller must defer end.
func begin(mu *sync.RWMutex, flag *bool) error {
	mu.Lock()
	defer mu.Unlock()
	if *flag {
		return ErrBusy
	}
	*flag = true
	return nil
}

func end(mu *sync.RWMutex, flag *bool) {
	mu.Lock()
	*flag = false
	mu.Unlock()
}
