package entrylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlit/internal/models"
)

type Item struct {
	Entry models.Entry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Entry.Date, i.Entry.Mood)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("activity %d/10", i.Entry.Activity)
	if i.Entry.Notes != "" {
		desc += " | " + i.Entry.Notes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Date + " " + i.Entry.Notes }

type Model struct {
	list list.Model
}

func New(entries []models.Entry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Entries"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the dashboard

	return Model{list: l}
}

// toItems lists entries newest day first, keeping logging order within a day.
func toItems(entries []models.Entry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for i := len(entries) - 1; i >= 0; {
		j := i
		for j > 0 && entries[j-1].Date == entries[i].Date {
			j--
		}
		for k := j; k <= i; k++ {
			items = append(items, Item{Entry: entries[k]})
		}
		i = j - 1
	}
	return items
}

func (m *Model) SetEntries(entries []models.Entry) {
	m.list.SetItems(toItems(entries))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries this month.\n  Log one with 'moodlit log'."
	}
	return m.list.View()
}
