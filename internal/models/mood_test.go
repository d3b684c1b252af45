package models

import "testing"

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr bool
	}{
		{name: "exact", input: "Happy", want: MoodHappy},
		{name: "lowercase", input: "stressed", want: MoodStressed},
		{name: "padded", input: "  Neutral ", want: MoodNeutral},
		{name: "unknown", input: "Bored", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMood(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMood(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMood(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoodIndexMatchesDeclarationOrder(t *testing.T) {
	if len(Moods) != 6 {
		t.Fatalf("expected 6 moods, got %d", len(Moods))
	}
	for i, m := range Moods {
		if m.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", m, m.Index(), i)
		}
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if Mood("Bored").Valid() {
		t.Error("unknown mood should not be valid")
	}
}
