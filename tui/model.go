package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/logger"
	"github.com/zappabad/news2option/tui/panels"
	"github.com/zappabad/news2option/tui/styles"
)

// Controllers are the view controllers the TUI drives.
type Controllers struct {
	News           *controller.NewsListController
	Analysis       *controller.AnalysisDetailController
	Recommendation *controller.RecommendationController
}

// Model is the main TUI application model.
type Model struct {
	ctx  context.Context
	ctrl Controllers
	log  logrus.FieldLogger

	route controller.Route

	// Panels
	newsPanel           *panels.NewsListPanel
	analysisPanel       *panels.AnalysisPanel
	recommendationPanel *panels.RecommendationPanel

	spinner spinner.Model

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model. ctx bounds every backend request.
func NewModel(ctx context.Context, ctrl Controllers, log logrus.FieldLogger) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	if log == nil {
		log = logger.Discard()
	}

	m := &Model{
		ctx:                 ctx,
		ctrl:                ctrl,
		log:                 log.WithField("component", "tui"),
		route:               controller.NewsRoute(),
		newsPanel:           panels.NewNewsListPanel(),
		analysisPanel:       panels.NewAnalysisPanel(),
		recommendationPanel: panels.NewRecommendationPanel(),
		spinner:             s,
	}
	m.focus()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.newsPanel.Init(),
		m.analysisPanel.Init(),
		m.recommendationPanel.Init(),
		m.spinner.Tick,
		m.navigate(m.route),
	)
}

// StartAt sets the page shown when the program starts.
func (m *Model) StartAt(r controller.Route) {
	m.route = r
	m.focus()
}

// Route returns the page on display.
func (m *Model) Route() controller.Route {
	return m.route
}

var (
	quitKeys    = key.NewBinding(key.WithKeys("ctrl+c", "q"))
	newsPageKey = key.NewBinding(key.WithKeys("1"))
	recsPageKey = key.NewBinding(key.WithKeys("2"))
	backKeys    = key.NewBinding(key.WithKeys("esc", "backspace"))
	reloadKey   = key.NewBinding(key.WithKeys("R"))
	collectKey  = key.NewBinding(key.WithKeys("c"))
	generateKey = key.NewBinding(key.WithKeys("g"))
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.route.Page == controller.PageNews && m.newsPanel.Searching() {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			break
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		m.ready = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case panels.NewsSelectedMsg:
		if route, ok := m.ctrl.News.Select(msg.ID); ok {
			return m, m.navigate(route)
		}
		return m, nil

	case panels.SearchSubmitMsg:
		cmds = append(cmds, m.searchNews(msg.Query))

	case newsDoneMsg:
		m.finish(msg.action, msg.err)
		m.newsPanel.SetState(m.ctrl.News.Snapshot())

	case analysisDoneMsg:
		s := m.ctrl.Analysis.Snapshot()
		if m.route.Page == controller.PageAnalysis && s.NewsID != m.route.NewsID {
			// A load for an earlier article finished, or ours was refused
			// while it ran. Fetch the article on display once it is idle.
			if !s.Loading {
				cmds = append(cmds, m.loadAnalysis(m.route.NewsID))
			}
			break
		}
		m.finish("load analysis", msg.err)
		m.analysisPanel.SetState(s)

	case recommendationDoneMsg:
		m.finish(msg.action, msg.err)
		m.recommendationPanel.SetState(m.ctrl.Recommendation.Snapshot())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

// handleKey runs the global and per-page key bindings.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, quitKeys):
		return tea.Quit, true
	case key.Matches(msg, newsPageKey):
		return m.navigate(controller.NewsRoute()), true
	case key.Matches(msg, recsPageKey):
		return m.navigate(controller.RecommendationsRoute()), true
	}

	switch m.route.Page {
	case controller.PageNews:
		switch {
		case key.Matches(msg, collectKey):
			return m.collectNews(), true
		case key.Matches(msg, reloadKey):
			return m.loadNews(), true
		}
	case controller.PageAnalysis:
		switch {
		case key.Matches(msg, backKeys):
			return m.navigate(controller.NewsRoute()), true
		case key.Matches(msg, reloadKey):
			return m.loadAnalysis(m.route.NewsID), true
		}
	case controller.PageRecommendations:
		switch {
		case key.Matches(msg, generateKey):
			return m.generateRecommendation(), true
		case key.Matches(msg, reloadKey):
			return m.loadRecommendation(), true
		}
	}
	return nil, false
}

// navigate switches page and loads its data, as entering a page does.
func (m *Model) navigate(r controller.Route) tea.Cmd {
	m.route = r
	m.statusMsg = ""
	m.focus()
	m.log.WithField("route", r.String()).Debug("navigate")

	switch r.Page {
	case controller.PageAnalysis:
		return m.loadAnalysis(r.NewsID)
	case controller.PageRecommendations:
		return m.loadRecommendation()
	}
	return m.loadNews()
}

// focus gives the keyboard to the panel of the current page.
func (m *Model) focus() {
	m.newsPanel.SetFocus(m.route.Page == controller.PageNews)
	m.analysisPanel.SetFocus(m.route.Page == controller.PageAnalysis)
	m.recommendationPanel.SetFocus(m.route.Page == controller.PageRecommendations)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.route.Page {
	case controller.PageNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	case controller.PageAnalysis:
		m.analysisPanel, cmd = m.analysisPanel.Update(msg)
	case controller.PageRecommendations:
		m.recommendationPanel, cmd = m.recommendationPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// finish records the result of a background action in the status bar.
func (m *Model) finish(action string, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, controller.ErrBusy):
		m.statusMsg = action + ": already in progress"
	default:
		m.log.WithError(err).WithField("action", action).Error("action failed")
		m.statusMsg = action + ": " + err.Error()
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌─────────────────────────────────────────────┐
	// │ News2Option   News   Recommendations        │
	// ├─────────────────────────────────────────────┤
	// │                 page panel                  │
	// ├─────────────────────────────────────────────┤
	// │ status bar                                  │
	// └─────────────────────────────────────────────┘

	var body string
	switch m.route.Page {
	case controller.PageAnalysis:
		body = m.analysisPanel.View()
		if s := m.ctrl.Analysis.Snapshot(); s.Loading || s.NewsID != m.route.NewsID || s.Outcome.Kind == controller.OutcomeNone {
			body = m.renderLoading("Loading analysis...")
		}
	case controller.PageRecommendations:
		body = m.recommendationPanel.View()
		if s := m.ctrl.Recommendation.Snapshot(); s.Loading && !s.Generating {
			body = m.renderLoading("Loading recommendation...")
		}
	default:
		body = m.newsPanel.View()
		if s := m.ctrl.News.Snapshot(); s.Loading && len(s.News) == 0 {
			body = m.renderLoading("Loading news...")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderStatusBar())
}

func (m *Model) renderHeader() string {
	tab := func(label string, active bool) string {
		if active {
			return styles.ActiveTabStyle.Render(label)
		}
		return styles.TabStyle.Render(label)
	}

	onNews := m.route.Page != controller.PageRecommendations
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.AppTitleStyle.Render("News2Option"),
		" ",
		tab("1 News", onNews),
		tab("2 Recommendations", !onNews),
	)

	if busy := m.busyLabel(); busy != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", m.spinner.View(), " ", busy)
	}
	return header
}

// busyLabel names the action in progress on the current page.
func (m *Model) busyLabel() string {
	switch m.route.Page {
	case controller.PageNews:
		if m.ctrl.News.Snapshot().Collecting {
			return "Collecting News..."
		}
	case controller.PageRecommendations:
		if m.ctrl.Recommendation.Snapshot().Generating {
			return "Generating..."
		}
	}
	return ""
}

func (m *Model) renderLoading(text string) string {
	content := m.spinner.View() + " " + text
	return styles.PanelStyle.Width(m.width - 2).Height(m.bodyHeight() - 2).Render(content)
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("1/2") + styles.StatusBarDescStyle.Render(" pages"),
	}
	switch m.route.Page {
	case controller.PageNews:
		help = append(help,
			styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
			styles.StatusBarKeyStyle.Render("enter") + styles.StatusBarDescStyle.Render(" analysis"),
			styles.StatusBarKeyStyle.Render("/") + styles.StatusBarDescStyle.Render(" search"),
			styles.StatusBarKeyStyle.Render("c") + styles.StatusBarDescStyle.Render(" collect"),
		)
	case controller.PageAnalysis:
		help = append(help,
			styles.StatusBarKeyStyle.Render("esc") + styles.StatusBarDescStyle.Render(" back"),
			styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" scroll"),
		)
	case controller.PageRecommendations:
		help = append(help,
			styles.StatusBarKeyStyle.Render("g") + styles.StatusBarDescStyle.Render(" generate"),
			styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" scroll"),
		)
	}
	help = append(help,
		styles.StatusBarKeyStyle.Render("R") + styles.StatusBarDescStyle.Render(" reload"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	)

	helpStr := help[0]
	for _, h := range help[1:] {
		helpStr += " │ " + h
	}

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

// bodyHeight leaves one line each for the header and status bar.
func (m *Model) bodyHeight() int {
	return max(5, m.height-2)
}

func (m *Model) updatePanelSizes() {
	h := m.bodyHeight()
	m.newsPanel.SetSize(m.width, h)
	m.analysisPanel.SetSize(m.width, h)
	m.recommendationPanel.SetSize(m.width, h)
}
