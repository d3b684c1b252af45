package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/storage"
)

// fakePrompter replays scripted answers. An exhausted script behaves like
// the user pressing ctrl+c.
type fakePrompter struct {
	menu     []string
	entries  []EntryInput
	confirms []bool

	entryDefaults []EntryInput
	confirmTitles []string
}

func (p *fakePrompter) Menu() (string, error) {
	if len(p.menu) == 0 {
		return "", huh.ErrUserAborted
	}
	choice := p.menu[0]
	p.menu = p.menu[1:]
	return choice, nil
}

func (p *fakePrompter) Entry(defaults EntryInput) (EntryInput, error) {
	p.entryDefaults = append(p.entryDefaults, defaults)
	if len(p.entries) == 0 {
		return EntryInput{}, huh.ErrUserAborted
	}
	in := p.entries[0]
	p.entries = p.entries[1:]
	return in, nil
}

func (p *fakePrompter) Confirm(title string) (bool, error) {
	p.confirmTitles = append(p.confirmTitles, title)
	if len(p.confirms) == 0 {
		return false, huh.ErrUserAborted
	}
	ok := p.confirms[0]
	p.confirms = p.confirms[1:]
	return ok, nil
}

var fixedNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.Local)

func setupTestContext(t *testing.T, ext string) (*Context, *fakePrompter, *bytes.Buffer) {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "moodlit"+ext))
	t.Cleanup(func() { store.Close() })

	prompter := &fakePrompter{}
	out := &bytes.Buffer{}
	ctx := &Context{
		Store:    store,
		Prompter: prompter,
		Out:      out,
		Now:      func() time.Time { return fixedNow },
	}
	return ctx, prompter, out
}

func seed(t *testing.T, ctx *Context, entries map[string][]models.Entry) {
	t.Helper()
	for date, list := range entries {
		for _, e := range list {
			if err := ctx.Store.Append(date, e); err != nil {
				t.Fatalf("failed to seed %s: %v", date, err)
			}
		}
	}
}

func loadAll(t *testing.T, ctx *Context) models.Log {
	t.Helper()
	log, err := ctx.Store.LoadAll()
	if err != nil {
		t.Fatalf("failed to load entries: %v", err)
	}
	return log
}
