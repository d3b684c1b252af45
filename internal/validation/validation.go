package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/moodlit/internal/constants"
	apperr "github.com/julianstephens/moodlit/internal/errors"
	"github.com/julianstephens/moodlit/internal/models"
)

// ParseActivity parses a user-entered activity rating.
func ParseActivity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &apperr.ValidationError{Field: "activity", Message: "please enter a number"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &apperr.ValidationError{Field: "activity", Message: "please enter a number"}
	}
	if err := ValidateActivity(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateActivity checks that n is within the inclusive rating range.
func ValidateActivity(n int) error {
	if n < constants.MinActivity || n > constants.MaxActivity {
		return &apperr.ValidationError{
			Field:   "activity",
			Message: fmt.Sprintf("please enter a number between %d and %d", constants.MinActivity, constants.MaxActivity),
		}
	}
	return nil
}

func ValidateMood(m models.Mood) error {
	if !m.Valid() {
		return &apperr.ValidationError{Field: "mood", Message: fmt.Sprintf("unknown mood %q", string(m))}
	}
	return nil
}

// ValidateEntry checks everything the input layer guarantees before an
// entry reaches the store.
func ValidateEntry(e models.Entry) error {
	if err := ValidateMood(e.Mood); err != nil {
		return err
	}
	if err := ValidateActivity(e.Activity); err != nil {
		return err
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return &apperr.ValidationError{Field: "date", Message: fmt.Sprintf("%q is not YYYY-MM-DD", e.Date)}
	}
	return nil
}

// ParseDate accepts "today" (relative to now) or a YYYY-MM-DD date. The
// result is midnight in now's location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "today" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	if s == "yesterday" {
		y, m, d := now.AddDate(0, 0, -1).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, now.Location())
	if err != nil {
		return time.Time{}, &apperr.ValidationError{Field: "date", Message: fmt.Sprintf("%q is not YYYY-MM-DD or 'today'", s)}
	}
	return t, nil
}

// ParseMonth accepts YYYY-MM and returns the first day of that month in
// now's location. An empty string selects the month of now.
func ParseMonth(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(constants.MonthFormat, s, now.Location())
	if err != nil {
		return time.Time{}, &apperr.ValidationError{Field: "month", Message: fmt.Sprintf("%q is not YYYY-MM", s)}
	}
	return t, nil
}
