package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/storage"
	"github.com/julianstephens/moodlit/internal/tui/components/entrylist"
)

type SessionState int

const (
	StateSummary SessionState = iota
	StateTrend
	StateEntries
)

var tabTitles = []string{"Summary", "Trend", "Entries"}

// logLoadedMsg carries the result of reading the store.
type logLoadedMsg struct {
	log models.Log
	err error
}

// Model is the read-only dashboard: a monthly summary, the month's trend
// and its entries, for a month the user can page through.
type Model struct {
	store    storage.Provider
	now      func() time.Time
	state    SessionState
	keys     KeyMap
	help     help.Model
	month    time.Time
	log      models.Log
	err      error
	entries  entrylist.Model
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		store:   store,
		now:     now,
		state:   StateSummary,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		month:   firstOfMonth(now()),
		log:     models.Log{},
		entries: entrylist.New(nil, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		log, err := store.LoadAll()
		return logLoadedMsg{log: log, err: err}
	}
}

// Month returns the first day of the month on display.
func (m Model) Month() time.Time {
	return m.month
}

func (m Model) State() SessionState {
	return m.state
}

// monthEntries returns the selected month's entries in date order.
func (m Model) monthEntries() []models.Entry {
	var entries []models.Entry
	prefix := m.month.Format(constants.MonthFormat)
	for _, date := range m.log.Dates() {
		if strings.HasPrefix(date, prefix) {
			entries = append(entries, m.log[date]...)
		}
	}
	return entries
}

func (m *Model) refreshEntries() {
	m.entries.SetEntries(m.monthEntries())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
