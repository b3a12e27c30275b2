package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Stocks  rose\n\ttoday.", "Stocks rose today."},
		{"html", "<p>Stocks <b>rose</b></p><p>today.</p>", "Stocks rosetoday."},
		{"entities", "S&amp;P 500 gains", "S&P 500 gains"},
		{"script removed", "<div>Hello<script>alert(1)</script> world</div>", "Hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Excerpt("short", 10))
	assert.Equal(t, "abcdef...", Excerpt("abcdefghijkl", 9))
	assert.Equal(t, "whole text", Excerpt("whole text", 0))
	assert.Equal(t, "ab", Excerpt("abcdef", 2))
}
