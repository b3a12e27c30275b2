package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NEWS2OPTION_LOGGING_FILE", filepath.Join(t.TempDir(), "cli.log"))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--api-url", srv.URL + "/api"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNewsCommand_FallbackWhenEmpty(t *testing.T) {
	out, err := execute(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, "news")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing sample articles")
	assert.Contains(t, out, "Financial Times")
}

func TestAnalysisCommand_Partial(t *testing.T) {
	out, err := execute(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/news/42" {
			_, _ = w.Write([]byte(`{"id": 42, "title": "Oil slips", "content": "Brent fell.", "source": "Reuters"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}, "analysis", "42")

	require.NoError(t, err)
	assert.Contains(t, out, "No analysis available")
	assert.Contains(t, out, "Oil slips")
}

func TestAnalysisCommand_InvalidID(t *testing.T) {
	_, err := execute(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}, "analysis", "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid news id")
}

func TestDigestCommand(t *testing.T) {
	out, err := execute(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/news/recent":
			_, _ = w.Write([]byte(`[{"id": 1, "title": "Chip rally", "source": "Bloomberg"}]`))
		case "/api/recommendations/latest":
			_, _ = w.Write([]byte(`{"id": 2, "date": "2025-03-14", "summary": "Stay long tech.", "overallSentiment": "BULLISH", "recommendedInvestments": []}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, "digest")

	require.NoError(t, err)
	assert.Contains(t, out, "Chip rally")
	assert.Contains(t, out, "Stay long tech.")
	assert.Contains(t, out, "BULLISH")
}

func TestTUICommand_InvalidRoute(t *testing.T) {
	_, err := execute(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}, "tui", "--route", "/analysis/abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid route "/analysis/abc"`)
}
