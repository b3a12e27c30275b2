package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/domain"
	"github.com/zappabad/news2option/tui/styles"
)

// NewsSelectedMsg is sent when enter is pressed on a news card.
type NewsSelectedMsg struct {
	ID int64
}

// SearchSubmitMsg is sent when a search query is confirmed. An empty
// query returns to the recent listing.
type SearchSubmitMsg struct {
	Query string
}

// NewsListPanel displays the news list and the search box.
type NewsListPanel struct {
	state         controller.NewsListState
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int

	search    textinput.Model
	searching bool
}

// NewNewsListPanel creates a new news list panel.
func NewNewsListPanel() *NewsListPanel {
	search := textinput.New()
	search.Placeholder = "Search titles..."
	search.Prompt = "/ "
	search.CharLimit = 100
	search.Width = 40

	return &NewsListPanel{search: search}
}

// Init initializes the panel.
func (p *NewsListPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *NewsListPanel) Update(msg tea.Msg) (*NewsListPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	if p.searching {
		return p.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if p.selectedIndex > 0 {
			p.selectedIndex--
			p.scrollIntoView()
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if p.selectedIndex < len(p.state.News)-1 {
			p.selectedIndex++
			p.scrollIntoView()
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("/"))):
		p.searching = true
		p.search.SetValue(p.state.Query)
		p.search.CursorEnd()
		return p, p.search.Focus()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if item := p.SelectedNews(); item != nil {
			id := item.ID
			return p, func() tea.Msg { return NewsSelectedMsg{ID: id} }
		}
	}
	return p, nil
}

func (p *NewsListPanel) updateSearch(msg tea.KeyMsg) (*NewsListPanel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		p.searching = false
		p.search.Blur()
		return p, nil
	case tea.KeyEnter:
		p.searching = false
		p.search.Blur()
		query := strings.TrimSpace(p.search.Value())
		return p, func() tea.Msg { return SearchSubmitMsg{Query: query} }
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	return p, cmd
}

// Searching reports whether the search box has the keyboard.
func (p *NewsListPanel) Searching() bool {
	return p.searching
}

// cardHeight is the rendered height of the card at i.
func (p *NewsListPanel) cardHeight(i int) int {
	return lipgloss.Height(RenderNewsCard(p.state.News[i], p.width-4, false))
}

// listHeight is the space left for cards below the title and banners.
func (p *NewsListPanel) listHeight() int {
	h := p.height - 3 - lipgloss.Height(p.header())
	if h < 1 {
		h = 1
	}
	return h
}

func (p *NewsListPanel) scrollIntoView() {
	if p.selectedIndex < p.scrollOffset {
		p.scrollOffset = p.selectedIndex
		return
	}
	if p.width <= 0 || p.height <= 0 {
		return
	}
	for p.scrollOffset < p.selectedIndex {
		used := 0
		for i := p.scrollOffset; i <= p.selectedIndex; i++ {
			used += p.cardHeight(i)
		}
		if used <= p.listHeight() {
			break
		}
		p.scrollOffset++
	}
}

// header holds the search box and the fallback or notice banners.
func (p *NewsListPanel) header() string {
	var parts []string
	if p.searching {
		parts = append(parts, p.search.View())
	} else if p.state.Query != "" {
		parts = append(parts, styles.MetaStyle.Render(fmt.Sprintf("Results for %q", p.state.Query)))
	}
	if p.state.Notice != "" {
		parts = append(parts, RenderError(p.state.Notice, p.width-4))
	}
	if p.state.UsingFallback {
		parts = append(parts, RenderWarning(FallbackBanner, p.width-4))
	}
	return strings.Join(parts, "\n")
}

// View renders the panel.
func (p *NewsListPanel) View() string {
	var content strings.Builder

	if h := p.header(); h != "" {
		content.WriteString(h)
		content.WriteString("\n")
	}

	if len(p.state.News) == 0 {
		content.WriteString(styles.MutedStyle.Render(NoNewsFound))
	} else {
		budget := p.listHeight()
		used := 0
		for i := p.scrollOffset; i < len(p.state.News); i++ {
			card := RenderNewsCard(p.state.News[i], p.width-4, i == p.selectedIndex && p.focused)
			h := lipgloss.Height(card)
			if used > 0 && used+h > budget {
				break
			}
			content.WriteString(card)
			content.WriteString("\n")
			used += h
		}
		content.WriteString(styles.MutedStyle.Render(fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.state.News))))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Financial News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *NewsListPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsListPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.search.Width = max(10, width-10)
	p.scrollIntoView()
}

// SetState replaces the displayed list with a controller snapshot.
// A different query or list moves the selection back to the top.
func (p *NewsListPanel) SetState(s controller.NewsListState) {
	if s.Query != p.state.Query || !sameIDs(s.News, p.state.News) {
		p.selectedIndex = 0
		p.scrollOffset = 0
	}
	p.state = s
}

func sameIDs(a, b []domain.News) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// SelectedNews returns the currently selected news item.
func (p *NewsListPanel) SelectedNews() *domain.News {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.state.News) {
		return &p.state.News[p.selectedIndex]
	}
	return nil
}
