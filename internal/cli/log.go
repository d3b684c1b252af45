package cli

import (
	"fmt"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/report"
	"github.com/julianstephens/moodlit/internal/validation"
)

type LogCmd struct {
	Mood     string `short:"m" help:"Mood (Happy, Sad, Neutral, Angry, Excited, Stressed)."`
	Activity int    `short:"a" help:"Activity rating (1-10)."`
	Notes    string `short:"n" help:"Free-text notes."`
	Date     string `short:"d" help:"Date to log for (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *LogCmd) Run(ctx *Context) error {
	day, err := validation.ParseDate(c.Date, ctx.Now())
	if err != nil {
		return err
	}

	input := EntryInput{Activity: c.Activity, Notes: c.Notes}
	if c.Mood != "" {
		mood, err := models.ParseMood(c.Mood)
		if err != nil {
			return err
		}
		input.Mood = mood
	}

	// Anything missing from the flags is collected interactively
	if !input.Mood.Valid() || input.Activity == 0 {
		input, err = ctx.Prompter.Entry(input)
		if err != nil {
			return err
		}
	}

	return logEntry(ctx, day.Format(constants.DateFormat), input)
}

// logEntry validates input and appends it to the bucket for date.
func logEntry(ctx *Context, date string, input EntryInput) error {
	entry := models.Entry{
		Date:     date,
		Mood:     input.Mood,
		Activity: input.Activity,
		Notes:    input.Notes,
	}
	if err := validation.ValidateEntry(entry); err != nil {
		return err
	}

	ctx.println("Logging your data...")
	if err := ctx.Store.Append(date, entry); err != nil {
		return fmt.Errorf("failed to log entry: %w", err)
	}
	logger.Info("Logged entry", "date", date, "mood", entry.Mood, "activity", entry.Activity)

	ctx.println(report.Entry(entry))
	return nil
}
