package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/domain"
	"github.com/zappabad/news2option/internal/news"
	"github.com/zappabad/news2option/tui/styles"
)

const (
	timeLayout = "2006-01-02 15:04"

	// excerptRunes bounds the body preview on a news card.
	excerptRunes = 280
	minCardWidth = 24
)

// Banner texts.
const (
	FallbackBanner  = "Showing sample articles. The server returned no news; press c to collect the latest."
	GenerateHint    = "Press g to generate a recommendation."
	NoNewsFound     = "No news articles found."
	PlaceholderHint = "sample article"
)

// FormatTime renders a timestamp for cards, or "unknown" when unset.
func FormatTime(t domain.DateTime) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(timeLayout)
}

func cardWidth(width int) int {
	if width < minCardWidth {
		return minCardWidth
	}
	return width
}

// inner is the text width inside a bordered, padded box.
func inner(width int) int {
	return cardWidth(width) - 4
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(inner(width)).Render(s)
}

// RenderNewsCard renders one entry of the news list. Placeholder items
// carry no link and no analysis hint.
func RenderNewsCard(n domain.News, width int, selected bool) string {
	w := inner(width)

	lines := []string{
		styles.CardTitleStyle.Width(w).Render(n.Title),
		styles.MetaStyle.Render("Source: "+n.Source) + "  " + styles.TimeStyle.Render(FormatTime(n.PublishedAt)),
	}
	if body := news.Excerpt(n.Content, excerptRunes); body != "" {
		lines = append(lines, styles.BodyStyle.Width(w).Render(body))
	}

	if n.Navigable() {
		footer := styles.MutedStyle.Render("enter: view analysis")
		if n.URL != "" && n.URL != news.PlaceholderURL {
			footer += "  " + styles.LinkStyle.Render(n.URL)
		}
		lines = append(lines, footer)
	} else {
		lines = append(lines, styles.MutedStyle.Render(PlaceholderHint))
	}

	style := styles.CardStyle
	if selected {
		style = styles.SelectedCardStyle
	}
	return style.Width(cardWidth(width) - 2).Render(strings.Join(lines, "\n"))
}

// RenderWarning renders a soft-failure banner.
func RenderWarning(msg string, width int) string {
	return styles.WarningStyle.Width(cardWidth(width) - 2).Render(msg)
}

// RenderError renders a hard-failure banner.
func RenderError(msg string, width int) string {
	return styles.ErrorStyle.Width(cardWidth(width) - 2).Render(msg)
}

func section(title, body string, width int) string {
	return styles.HeaderStyle.Render(title) + "\n" + wrap(body, width)
}

func separator(width int) string {
	return styles.MutedStyle.Render(strings.Repeat("─", inner(width)))
}

func scoreBadge(label string, s domain.Score) string {
	return styles.OutlineBadgeStyle.Render(label + s.String())
}

// RenderAnalysisDetail renders a resolved analysis: the article, the
// analysis text and every industry with its affected companies.
func RenderAnalysisDetail(a domain.NewsAnalysis, width int) string {
	var b strings.Builder

	b.WriteString(styles.CardTitleStyle.Width(inner(width)).Render(a.News.Title))
	b.WriteString("\n")
	b.WriteString(styles.MetaStyle.Render("Source: " + a.News.Source))
	b.WriteString("  ")
	b.WriteString(styles.TimeStyle.Render("Analyzed " + FormatTime(a.AnalyzedAt)))
	b.WriteString("\n\n")

	b.WriteString(section("News Content", news.PlainText(a.News.Content), width))
	b.WriteString("\n" + separator(width) + "\n")
	b.WriteString(section("Analysis", a.AnalysisContent, width))
	b.WriteString("\n" + separator(width) + "\n")
	b.WriteString(styles.HeaderStyle.Render("Industry Impacts"))

	if len(a.IndustryImpacts) == 0 {
		b.WriteString("\n" + styles.MutedStyle.Render("No industry impacts identified."))
	}
	for _, ind := range a.IndustryImpacts {
		b.WriteString("\n\n")
		b.WriteString(styles.CardTitleStyle.Render(ind.IndustryName))
		b.WriteString("  " + styles.ImpactBadge(ind.ImpactType))
		b.WriteString(" " + scoreBadge("Impact: ", ind.ImpactScore))

		if len(ind.CompanyImpacts) == 0 {
			continue
		}
		b.WriteString("\n" + styles.MetaStyle.Render("Affected Companies"))
		for _, c := range ind.CompanyImpacts {
			name := c.CompanyName
			if c.StockSymbol != "" {
				name += " (" + c.StockSymbol + ")"
			}
			b.WriteString(fmt.Sprintf("\n  • %s  %s %s", name, styles.ImpactBadge(c.ImpactType), scoreBadge("", c.ImpactScore)))
		}
	}

	return styles.CardStyle.Width(cardWidth(width) - 2).Render(b.String())
}

// RenderPartialNews renders the bare article under a soft warning.
func RenderPartialNews(n domain.News, msg string, width int) string {
	body := styles.CardTitleStyle.Width(inner(width)).Render(n.Title) + "\n" +
		styles.MetaStyle.Render("Source: "+n.Source) + "  " + styles.TimeStyle.Render(FormatTime(n.PublishedAt)) + "\n\n" +
		wrap(news.PlainText(n.Content), width)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderWarning(msg, width),
		styles.CardStyle.Width(cardWidth(width)-2).Render(body),
	)
}

// RenderAnalysisOutcome renders exactly one of: the hard error, the
// partial article with its warning, or the full analysis.
func RenderAnalysisOutcome(out controller.Outcome, width int) string {
	switch out.Kind {
	case controller.OutcomeFailed:
		return RenderError(out.Message, width)
	case controller.OutcomePartial:
		if out.News != nil {
			return RenderPartialNews(*out.News, out.Message, width)
		}
		return RenderWarning(out.Message, width)
	case controller.OutcomeResolved:
		if out.Analysis != nil {
			return RenderAnalysisDetail(*out.Analysis, width)
		}
	}
	return ""
}

// RenderRecommendationCard renders a daily recommendation.
func RenderRecommendationCard(r domain.DailyInvestmentRecommendation, width int) string {
	var b strings.Builder

	b.WriteString(styles.CardTitleStyle.Render("Investment Recommendations"))
	if date := r.Date.String(); date != "" {
		b.WriteString("  " + styles.OutlineBadgeStyle.Render(date))
	}
	b.WriteString("\n")
	b.WriteString(styles.MetaStyle.Render("Overall Market Sentiment:") + " " + styles.SentimentBadge(r.OverallSentiment))
	b.WriteString("\n\n")

	b.WriteString(section("Market Summary", r.Summary, width))
	b.WriteString("\n" + separator(width) + "\n")
	b.WriteString(styles.HeaderStyle.Render("Recommended Investments"))

	if len(r.RecommendedInvestments) == 0 {
		b.WriteString("\n" + styles.MutedStyle.Render("No investments recommended."))
	}
	for _, inv := range r.RecommendedInvestments {
		b.WriteString("\n\n")
		b.WriteString(styles.CardTitleStyle.Render(inv.CompanyName))
		b.WriteString("  " + styles.ActionBadge(inv.RecommendationType))
		b.WriteString(" " + scoreBadge("Confidence: ", inv.ConfidenceScore))

		meta := inv.IndustryName
		if inv.StockSymbol != "" {
			meta += " (" + inv.StockSymbol + ")"
		}
		b.WriteString("\n" + styles.MetaStyle.Render(meta))
		if inv.Rationale != "" {
			b.WriteString("\n" + wrap(inv.Rationale, width))
		}
	}

	return styles.CardStyle.Width(cardWidth(width) - 2).Render(b.String())
}

// RenderRecommendationState renders the recommendation view. An empty
// view shows its message with the generate hint; a failed generation
// shows its error above the recommendation still loaded.
func RenderRecommendationState(s controller.RecommendationState, width int) string {
	switch s.ErrorKind {
	case controller.ErrorEmpty:
		return RenderWarning(s.Error+"\n"+GenerateHint, width)
	case controller.ErrorGenerateFailed:
		parts := []string{RenderError(s.Error, width)}
		if s.Recommendation != nil {
			parts = append(parts, RenderRecommendationCard(*s.Recommendation, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	if s.Recommendation != nil {
		return RenderRecommendationCard(*s.Recommendation, width)
	}
	return ""
}
