package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/domain"
)

func newsItems(ids ...int64) []domain.News {
	items := make([]domain.News, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.News{ID: id, Title: "headline"})
	}
	return items
}

func TestNewsListPanel_SetStateResetsSelection(t *testing.T) {
	t.Parallel()

	down := tea.KeyMsg{Type: tea.KeyDown}

	tests := []struct {
		name   string
		next   controller.NewsListState
		wantID int64
	}{
		{"same list keeps selection", controller.NewsListState{News: newsItems(1, 2, 3)}, 3},
		{"new list", controller.NewsListState{News: newsItems(4, 5, 6)}, 4},
		{"new query", controller.NewsListState{News: newsItems(1, 2, 3), Query: "gold"}, 1},
		{"shorter list", controller.NewsListState{News: newsItems(1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewNewsListPanel()
			p.SetFocus(true)
			p.SetSize(100, 40)
			p.SetState(controller.NewsListState{News: newsItems(1, 2, 3)})
			p.Update(down)
			p.Update(down)
			require.Equal(t, int64(3), p.SelectedNews().ID)

			p.SetState(tt.next)

			require.NotNil(t, p.SelectedNews())
			assert.Equal(t, tt.wantID, p.SelectedNews().ID)
			assert.LessOrEqual(t, p.scrollOffset, p.selectedIndex)
		})
	}
}

func TestNewsListPanel_EmptyList(t *testing.T) {
	t.Parallel()

	p := NewNewsListPanel()
	p.SetFocus(true)
	p.SetState(controller.NewsListState{})

	assert.Nil(t, p.SelectedNews())
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
