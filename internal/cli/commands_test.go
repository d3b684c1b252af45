package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/julianstephens/moodlit/internal/backup"
	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/models"
)

func TestShellLogAnalyzeExit(t *testing.T) {
	for _, ext := range []string{".json", ".db"} {
		t.Run(ext, func(t *testing.T) {
			ctx, prompter, out := setupTestContext(t, ext)
			prompter.menu = []string{constants.MenuLog, constants.MenuAnalyze, constants.MenuExit}
			prompter.entries = []EntryInput{{Mood: models.MoodHappy, Activity: 8, Notes: "sunny"}}

			if err := (&ShellCmd{}).Run(ctx); err != nil {
				t.Fatalf("shell failed: %v", err)
			}

			log := loadAll(t, ctx)
			entries := log["2024-06-15"]
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry for today, got %d", len(entries))
			}
			if entries[0].Mood != models.MoodHappy || entries[0].Activity != 8 || entries[0].Notes != "sunny" {
				t.Errorf("unexpected entry: %+v", entries[0])
			}

			text := out.String()
			for _, want := range []string{"Logging your data...", "Analyzing...", "Most Common Mood", "Happy", "Goodbye!"} {
				if !strings.Contains(text, want) {
					t.Errorf("output missing %q:\n%s", want, text)
				}
			}
		})
	}
}

func TestShellAbortSaysGoodbye(t *testing.T) {
	ctx, prompter, out := setupTestContext(t, ".json")
	prompter.menu = []string{constants.MenuLog}
	// no scripted entry: the form is cancelled

	if err := (&ShellCmd{}).Run(ctx); err != nil {
		t.Fatalf("expected graceful exit, got %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected goodbye message, got:\n%s", out.String())
	}
	if log := loadAll(t, ctx); !log.Empty() {
		t.Errorf("expected nothing logged, got %v", log)
	}
}

func TestShellOnce(t *testing.T) {
	ctx, prompter, out := setupTestContext(t, ".json")
	prompter.menu = []string{constants.MenuTrends, constants.MenuExit}

	if err := (&ShellCmd{Once: true}).Run(ctx); err != nil {
		t.Fatalf("shell failed: %v", err)
	}
	if len(prompter.menu) != 1 {
		t.Errorf("expected shell to stop after one action, %d choices left", len(prompter.menu))
	}
	if !strings.Contains(out.String(), "No data to analyze.") {
		t.Errorf("expected no-data trend message, got:\n%s", out.String())
	}
}

func TestLogCmd(t *testing.T) {
	tests := []struct {
		name       string
		cmd        LogCmd
		prompted   []EntryInput
		wantDate   string
		wantMood   models.Mood
		wantPrompt bool
		wantErr    bool
	}{
		{
			name:     "flags only",
			cmd:      LogCmd{Mood: "excited", Activity: 9, Notes: "concert", Date: "today"},
			wantDate: "2024-06-15",
			wantMood: models.MoodExcited,
		},
		{
			name:     "explicit date",
			cmd:      LogCmd{Mood: "Sad", Activity: 2, Date: "2024-06-01"},
			wantDate: "2024-06-01",
			wantMood: models.MoodSad,
		},
		{
			name:       "missing activity prompts",
			cmd:        LogCmd{Mood: "Angry", Date: "yesterday"},
			prompted:   []EntryInput{{Mood: models.MoodAngry, Activity: 5}},
			wantDate:   "2024-06-14",
			wantMood:   models.MoodAngry,
			wantPrompt: true,
		},
		{
			name:    "unknown mood",
			cmd:     LogCmd{Mood: "bored", Activity: 5, Date: "today"},
			wantErr: true,
		},
		{
			name:    "activity out of range",
			cmd:     LogCmd{Mood: "Happy", Activity: 11, Date: "today"},
			wantErr: true,
		},
		{
			name:    "invalid date",
			cmd:     LogCmd{Mood: "Happy", Activity: 5, Date: "15/06/2024"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, prompter, _ := setupTestContext(t, ".json")
			prompter.entries = tt.prompted

			err := tt.cmd.Run(ctx)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if log := loadAll(t, ctx); !log.Empty() {
					t.Errorf("expected nothing logged, got %v", log)
				}
				return
			}
			if err != nil {
				t.Fatalf("log failed: %v", err)
			}

			if got := len(prompter.entryDefaults) > 0; got != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v", got, tt.wantPrompt)
			}

			entries := loadAll(t, ctx)[tt.wantDate]
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry on %s, got %d", tt.wantDate, len(entries))
			}
			if entries[0].Mood != tt.wantMood {
				t.Errorf("expected mood %s, got %s", tt.wantMood, entries[0].Mood)
			}
		})
	}
}

func TestLogCmdPromptKeepsFlagDefaults(t *testing.T) {
	ctx, prompter, _ := setupTestContext(t, ".json")
	prompter.entries = []EntryInput{{Mood: models.MoodNeutral, Activity: 6, Notes: "ok"}}

	if err := (&LogCmd{Activity: 6, Notes: "ok", Date: "today"}).Run(ctx); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	if len(prompter.entryDefaults) != 1 {
		t.Fatalf("expected one prompt, got %d", len(prompter.entryDefaults))
	}
	defaults := prompter.entryDefaults[0]
	if defaults.Activity != 6 || defaults.Notes != "ok" {
		t.Errorf("expected flag values as form defaults, got %+v", defaults)
	}
}

func TestAnalyzeCmd(t *testing.T) {
	ctx, _, out := setupTestContext(t, ".json")
	seed(t, ctx, map[string][]models.Entry{
		"2024-05-31": {{Mood: models.MoodAngry, Activity: 1}},
		"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
		"2024-06-03": {{Mood: models.MoodSad, Activity: 4}},
	})

	if err := (&AnalyzeCmd{}).Run(ctx); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"June 2024", "6.00", "Happy"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	out.Reset()
	if err := (&AnalyzeCmd{Month: "2024-07"}).Run(ctx); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(out.String(), "no logs for this month") {
		t.Errorf("expected no-logs message, got:\n%s", out.String())
	}

	if err := (&AnalyzeCmd{Month: "June"}).Run(ctx); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestTrendsCmd(t *testing.T) {
	ctx, _, out := setupTestContext(t, ".json")
	seed(t, ctx, map[string][]models.Entry{
		"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
		"2024-06-03": {{Mood: models.MoodSad, Activity: 4}},
	})

	tests := []struct {
		name string
		cmd  TrendsCmd
		want string
	}{
		{name: "full range", cmd: TrendsCmd{}, want: "2024-06-01 → 2024-06-03"},
		{name: "last week", cmd: TrendsCmd{Last: 7}, want: "2024-06-09 → 2024-06-15"},
		{name: "from only", cmd: TrendsCmd{From: "2024-06-02"}, want: "2024-06-02 → 2024-06-15"},
		{name: "to only", cmd: TrendsCmd{To: "2024-06-02"}, want: "2024-06-01 → 2024-06-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			if err := tt.cmd.Validate(); err != nil {
				t.Fatalf("validate failed: %v", err)
			}
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("trends failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestTrendsCmdRejectsBadWindows(t *testing.T) {
	ctx, _, _ := setupTestContext(t, ".json")

	if err := (&TrendsCmd{Last: 3, From: "2024-06-01"}).Validate(); err == nil {
		t.Error("expected --last with --from to be rejected")
	}
	if err := (&TrendsCmd{Last: -1}).Validate(); err == nil {
		t.Error("expected negative --last to be rejected")
	}
	if err := (&TrendsCmd{From: "2024-06-10", To: "2024-06-01"}).Run(ctx); err == nil {
		t.Error("expected inverted window to fail")
	}
}

func TestClearCmd(t *testing.T) {
	tests := []struct {
		name      string
		yes       bool
		confirms  []bool
		wantEmpty bool
		wantOut   string
	}{
		{name: "confirmed", confirms: []bool{true}, wantEmpty: true, wantOut: "All data cleared."},
		{name: "declined", confirms: []bool{false}, wantEmpty: false, wantOut: "Clear cancelled."},
		{name: "skip confirmation", yes: true, wantEmpty: true, wantOut: "All data cleared."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, prompter, out := setupTestContext(t, ".json")
			seed(t, ctx, map[string][]models.Entry{
				"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
			})
			prompter.confirms = tt.confirms

			if err := (&ClearCmd{Yes: tt.yes}).Run(ctx); err != nil {
				t.Fatalf("clear failed: %v", err)
			}

			if got := loadAll(t, ctx).Empty(); got != tt.wantEmpty {
				t.Errorf("empty = %v, want %v", got, tt.wantEmpty)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("expected %q, got:\n%s", tt.wantOut, out.String())
			}
			if tt.yes && len(prompter.confirmTitles) != 0 {
				t.Error("expected no confirmation prompt with --yes")
			}
		})
	}
}

func TestClearKeepsBackup(t *testing.T) {
	ctx, _, _ := setupTestContext(t, ".json")
	seed(t, ctx, map[string][]models.Entry{
		"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
	})

	if err := (&ClearCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	data, err := os.ReadFile(backups[0].Path)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if !strings.Contains(string(data), "2024-06-01") {
		t.Errorf("expected backup to hold the cleared entries, got %s", data)
	}
}

func TestBackupCommands(t *testing.T) {
	ctx, prompter, out := setupTestContext(t, ".json")
	seed(t, ctx, map[string][]models.Entry{
		"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
	})

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "Backup created") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil || len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d (%v)", len(backups), err)
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("expected one listed backup, got:\n%s", out.String())
	}

	if err := ctx.Store.Clear(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	// declined restore leaves the store alone
	prompter.confirms = []bool{false, true}
	restore := &BackupRestoreCmd{BackupFile: backups[0].Path}
	if err := restore.Run(ctx); err != nil {
		t.Fatalf("backup restore failed: %v", err)
	}
	if !loadAll(t, ctx).Empty() {
		t.Fatal("expected declined restore to leave the store empty")
	}

	if err := restore.Run(ctx); err != nil {
		t.Fatalf("backup restore failed: %v", err)
	}
	if entries := loadAll(t, ctx)["2024-06-01"]; len(entries) != 1 {
		t.Errorf("expected restored entry, got %v", entries)
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _, _ := setupTestContext(t, ".json")

	err := (&BackupRestoreCmd{BackupFile: "moodlit-20240101-0000.json", Yes: true}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestInitCmd(t *testing.T) {
	ctx, _, out := setupTestContext(t, ".json")

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), "Initialized JSON storage") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	if err := (&InitCmd{}).Run(ctx); err == nil {
		t.Error("expected second init to fail")
	}

	seed(t, ctx, map[string][]models.Entry{
		"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
	})
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
	if !loadAll(t, ctx).Empty() {
		t.Error("expected forced init to start from an empty store")
	}
}

func TestInitCmdCopiesSource(t *testing.T) {
	src, _, _ := setupTestContext(t, ".json")
	seed(t, src, map[string][]models.Entry{
		"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}, {Mood: models.MoodSad, Activity: 3}},
		"2024-06-02": {{Mood: models.MoodNeutral, Activity: 5}},
	})

	ctx, _, out := setupTestContext(t, ".db")
	if err := (&InitCmd{Source: src.Store.GetConfigPath()}).Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}
	if !strings.Contains(out.String(), "Copied 3 entries") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	entries := loadAll(t, ctx)["2024-06-01"]
	if len(entries) != 2 || entries[0].Mood != models.MoodHappy || entries[1].Mood != models.MoodSad {
		t.Errorf("expected bucket order preserved, got %+v", entries)
	}
}

func TestDoctorCmd(t *testing.T) {
	for _, ext := range []string{".json", ".db"} {
		t.Run(ext, func(t *testing.T) {
			ctx, _, out := setupTestContext(t, ext)
			seed(t, ctx, map[string][]models.Entry{
				"2024-06-01": {{Mood: models.MoodHappy, Activity: 8}},
			})

			if err := (&DoctorCmd{}).Run(ctx); err != nil {
				t.Fatalf("doctor failed: %v\n%s", err, out.String())
			}
			text := out.String()
			for _, want := range []string{"Store reachable: OK", "Data validation: OK", "Schema version: OK", "Backups present: WARNING"} {
				if !strings.Contains(text, want) {
					t.Errorf("output missing %q:\n%s", want, text)
				}
			}
		})
	}
}

func TestDoctorCmdReportsInvalidEntries(t *testing.T) {
	ctx, _, out := setupTestContext(t, ".json")
	doc := `{"log": {"2024-06-01": [{"date": "2024-06-01", "mood": "Bored", "activity": 5, "notes": ""}]}}`
	if err := os.WriteFile(ctx.Store.GetConfigPath(), []byte(doc), 0600); err != nil {
		t.Fatalf("failed to write store: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected doctor to fail")
	}
	if !strings.Contains(out.String(), "Data validation: FAIL") {
		t.Errorf("expected validation failure, got:\n%s", out.String())
	}
}
