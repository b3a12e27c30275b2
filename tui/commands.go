package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Controller actions run off the update loop. Each returns a done message
// so the model can take a fresh snapshot.

type newsDoneMsg struct {
	action string
	err    error
}

type analysisDoneMsg struct {
	err error
}

type recommendationDoneMsg struct {
	action string
	err    error
}

func (m *Model) loadNews() tea.Cmd {
	return func() tea.Msg {
		return newsDoneMsg{action: "load news", err: m.ctrl.News.Load(m.ctx)}
	}
}

func (m *Model) collectNews() tea.Cmd {
	return func() tea.Msg {
		return newsDoneMsg{action: "collect news", err: m.ctrl.News.Collect(m.ctx)}
	}
}

func (m *Model) searchNews(query string) tea.Cmd {
	return func() tea.Msg {
		return newsDoneMsg{action: "search news", err: m.ctrl.News.Search(m.ctx, query)}
	}
}

func (m *Model) loadAnalysis(id int64) tea.Cmd {
	return func() tea.Msg {
		return analysisDoneMsg{err: m.ctrl.Analysis.Load(m.ctx, id)}
	}
}

func (m *Model) loadRecommendation() tea.Cmd {
	return func() tea.Msg {
		return recommendationDoneMsg{action: "load recommendation", err: m.ctrl.Recommendation.Load(m.ctx)}
	}
}

func (m *Model) generateRecommendation() tea.Cmd {
	return func() tea.Msg {
		return recommendationDoneMsg{action: "generate recommendation", err: m.ctrl.Recommendation.Generate(m.ctx)}
	}
}
