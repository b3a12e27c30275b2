package news

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from an article body and collapses whitespace.
// Collected bodies are often HTML fragments; plain bodies pass through
// unchanged apart from whitespace.
func PlainText(body string) string {
	if body == "" {
		return ""
	}
	text := body
	if strings.ContainsAny(body, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err == nil {
			doc.Find("script, style").Remove()
			text = doc.Text()
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt returns at most max runes of the plain text, ending in "..."
// when cut.
func Excerpt(body string, max int) string {
	text := PlainText(body)
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	cut := strings.TrimRight(string(runes[:max-3]), " ")
	return cut + "..."
}
