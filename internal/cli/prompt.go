package cli

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/validation"
)

// EntryInput is what the entry form collects.
type EntryInput struct {
	Mood     models.Mood
	Activity int
	Notes    string
}

// Prompter collects input interactively. Implementations return
// huh.ErrUserAborted (possibly wrapped) when the user cancels.
type Prompter interface {
	Menu() (string, error)
	Entry(defaults EntryInput) (EntryInput, error)
	Confirm(title string) (bool, error)
}

type huhPrompter struct {
	accessible bool
}

func NewHuhPrompter(accessible bool) Prompter {
	return &huhPrompter{accessible: accessible}
}

func (p *huhPrompter) run(groups ...*huh.Group) error {
	return huh.NewForm(groups...).
		WithAccessible(p.accessible).
		WithTheme(huh.ThemeCharm()).
		Run()
}

func (p *huhPrompter) Menu() (string, error) {
	choice := constants.MenuLog
	err := p.run(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What would you like to do?").
			Options(huh.NewOptions(constants.MenuChoices...)...).
			Value(&choice),
	))
	if err != nil {
		return "", err
	}
	return choice, nil
}

func (p *huhPrompter) Entry(defaults EntryInput) (EntryInput, error) {
	mood := defaults.Mood
	if !mood.Valid() {
		mood = models.MoodHappy
	}
	activity := ""
	if defaults.Activity != 0 {
		activity = strconv.Itoa(defaults.Activity)
	}
	notes := defaults.Notes

	moodOptions := make([]huh.Option[models.Mood], 0, len(models.Moods))
	for _, m := range models.Moods {
		moodOptions = append(moodOptions, huh.NewOption(m.String(), m))
	}

	err := p.run(huh.NewGroup(
		huh.NewSelect[models.Mood]().
			Title("How are you feeling today?").
			Options(moodOptions...).
			Value(&mood),
		huh.NewInput().
			Title("Rate your day? (1-10)").
			Value(&activity).
			Validate(func(s string) error {
				_, err := validation.ParseActivity(s)
				return err
			}),
		huh.NewInput().
			Title("Any notes?").
			Value(&notes),
	))
	if err != nil {
		return EntryInput{}, err
	}

	n, err := validation.ParseActivity(activity)
	if err != nil {
		return EntryInput{}, err
	}
	return EntryInput{Mood: mood, Activity: n, Notes: notes}, nil
}

func (p *huhPrompter) Confirm(title string) (bool, error) {
	confirmed := false
	err := p.run(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
