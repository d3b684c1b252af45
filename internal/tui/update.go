package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlit/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.entries.SetSize(msg.Width-4, msg.Height-8)

	case logLoadedMsg:
		if msg.err != nil {
			logger.Error("Dashboard failed to load entries", "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.log = msg.log
		m.refreshEntries()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.AddDate(0, -1, 0)
			m.refreshEntries()
		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.AddDate(0, 1, 0)
			m.refreshEntries()
		case key.Matches(msg, m.keys.ThisMonth):
			m.month = firstOfMonth(m.now())
			m.refreshEntries()
		case key.Matches(msg, m.keys.Reload):
			return m, m.load()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case m.state == StateEntries:
			var cmd tea.Cmd
			m.entries, cmd = m.entries.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}
