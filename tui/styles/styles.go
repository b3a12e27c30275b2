package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/news2option/internal/domain"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	PositiveColor = lipgloss.Color("#10B981") // Green
	NegativeColor = lipgloss.Color("#EF4444") // Red
	NeutralColor  = lipgloss.Color("#6B7280") // Gray
	HoldColor     = lipgloss.Color("#EAB308") // Yellow

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	// Section heading inside a card
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	BodyStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Source line and timestamps
	MetaStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Underline(true)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	OutlineBadgeStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// Banner styles
var (
	// Soft failures: placeholder list, missing analysis, empty recommendation.
	WarningStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Foreground(AccentColor).
			Padding(0, 1)

	// Hard failures.
	ErrorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(NegativeColor).
			Foreground(NegativeColor).
			Padding(0, 1)
)

// Header and navigation styles
var (
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Underline(true).
			Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// Helper function to render a title bar for a panel
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

func badge(label string, c lipgloss.Color) string {
	return BadgeStyle.Foreground(c).Render(label)
}

// ImpactBadge colors an impact direction.
func ImpactBadge(t domain.ImpactType) string {
	switch t {
	case domain.ImpactPositive:
		return badge(string(t), PositiveColor)
	case domain.ImpactNegative:
		return badge(string(t), NegativeColor)
	}
	return badge(string(t), NeutralColor)
}

// SentimentBadge colors an overall market sentiment.
func SentimentBadge(s domain.Sentiment) string {
	switch s {
	case domain.SentimentBullish:
		return badge(string(s), PositiveColor)
	case domain.SentimentBearish:
		return badge(string(s), NegativeColor)
	}
	return badge(string(s), NeutralColor)
}

// ActionBadge colors a BUY/SELL/HOLD recommendation.
func ActionBadge(t domain.RecommendationType) string {
	switch t {
	case domain.RecommendBuy:
		return badge(string(t), PositiveColor)
	case domain.RecommendSell:
		return badge(string(t), NegativeColor)
	}
	return badge(string(t), HoldColor)
}
