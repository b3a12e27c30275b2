package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []Route{NewsRoute(), AnalysisRoute(42), RecommendationsRoute()} {
		parsed, ok := ParseRoute(r.String())
		assert.True(t, ok, r.String())
		assert.Equal(t, r, parsed)
	}
}

func TestParseRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Route
		ok   bool
	}{
		{"", NewsRoute(), true},
		{"news", NewsRoute(), true},
		{"analysis/7/", AnalysisRoute(7), true},
		{"/recommendations", RecommendationsRoute(), true},
		{"/analysis/x", Route{}, false},
		{"/analysis", Route{}, false},
		{"/settings", Route{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseRoute(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
