package panels

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/tui/styles"
)

// scrollPanel is a titled panel with a scrollable body.
type scrollPanel struct {
	title   string
	vp      viewport.Model
	render  func(width int) string
	focused bool
	width   int
	height  int
}

func newScrollPanel(title string) scrollPanel {
	return scrollPanel{
		title:  title,
		vp:     viewport.New(0, 0),
		render: func(int) string { return "" },
	}
}

func (p *scrollPanel) update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && !p.focused {
		return nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *scrollPanel) refresh() {
	p.vp.SetContent(p.render(p.vp.Width))
}

func (p *scrollPanel) setSize(width, height int) {
	p.width = width
	p.height = height
	p.vp.Width = max(1, width-4)
	p.vp.Height = max(1, height-3)
	p.refresh()
}

func (p *scrollPanel) view() string {
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	title := styles.RenderTitle(p.title, p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, p.vp.View())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// AnalysisPanel displays the analysis of one news item.
type AnalysisPanel struct {
	scrollPanel
	state controller.AnalysisState
}

// NewAnalysisPanel creates a new analysis panel.
func NewAnalysisPanel() *AnalysisPanel {
	p := &AnalysisPanel{scrollPanel: newScrollPanel("News Analysis")}
	p.render = func(width int) string {
		return RenderAnalysisOutcome(p.state.Outcome, width)
	}
	return p
}

// Init initializes the panel.
func (p *AnalysisPanel) Init() tea.Cmd {
	return nil
}

// Update scrolls the analysis.
func (p *AnalysisPanel) Update(msg tea.Msg) (*AnalysisPanel, tea.Cmd) {
	return p, p.update(msg)
}

// View renders the panel.
func (p *AnalysisPanel) View() string {
	return p.view()
}

// SetFocus sets the focus state of the panel.
func (p *AnalysisPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *AnalysisPanel) SetSize(width, height int) {
	p.setSize(width, height)
}

// SetState replaces the displayed outcome and scrolls to the top.
func (p *AnalysisPanel) SetState(s controller.AnalysisState) {
	p.state = s
	p.refresh()
	p.vp.GotoTop()
}

// RecommendationPanel displays the daily recommendation.
type RecommendationPanel struct {
	scrollPanel
	state controller.RecommendationState
}

// NewRecommendationPanel creates a new recommendation panel.
func NewRecommendationPanel() *RecommendationPanel {
	p := &RecommendationPanel{scrollPanel: newScrollPanel("Investment Recommendations")}
	p.render = func(width int) string {
		return RenderRecommendationState(p.state, width)
	}
	return p
}

// Init initializes the panel.
func (p *RecommendationPanel) Init() tea.Cmd {
	return nil
}

// Update scrolls the recommendation.
func (p *RecommendationPanel) Update(msg tea.Msg) (*RecommendationPanel, tea.Cmd) {
	return p, p.update(msg)
}

// View renders the panel.
func (p *RecommendationPanel) View() string {
	return p.view()
}

// SetFocus sets the focus state of the panel.
func (p *RecommendationPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *RecommendationPanel) SetSize(width, height int) {
	p.setSize(width, height)
}

// SetState replaces the displayed recommendation.
func (p *RecommendationPanel) SetState(s controller.RecommendationState) {
	p.state = s
	p.refresh()
}
