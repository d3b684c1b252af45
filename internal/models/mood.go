package models

import (
	"fmt"
	"strings"
)

// Mood is the self-reported mood of an entry. It serializes as its name.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodSad      Mood = "Sad"
	MoodNeutral  Mood = "Neutral"
	MoodAngry    Mood = "Angry"
	MoodExcited  Mood = "Excited"
	MoodStressed Mood = "Stressed"
)

// Moods lists every mood in declaration order. Aggregations iterate this
// slice so ties always resolve to the earlier mood.
var Moods = []Mood{
	MoodHappy,
	MoodSad,
	MoodNeutral,
	MoodAngry,
	MoodExcited,
	MoodStressed,
}

// Index returns the position of m in Moods, or -1 if m is not a known mood.
func (m Mood) Index() int {
	switch m {
	case MoodHappy:
		return 0
	case MoodSad:
		return 1
	case MoodNeutral:
		return 2
	case MoodAngry:
		return 3
	case MoodExcited:
		return 4
	case MoodStressed:
		return 5
	default:
		return -1
	}
}

func (m Mood) Valid() bool {
	return m.Index() >= 0
}

func (m Mood) String() string {
	return string(m)
}

// ParseMood matches s against the known moods, ignoring case and
// surrounding whitespace.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	for _, m := range Moods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood: %q", s)
}
