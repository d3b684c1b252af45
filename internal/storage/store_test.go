package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/moodlit/internal/models"
)

// providers returns a fresh store of every implementation rooted in a temp dir.
func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	stores := map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "nested", "moodlit.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "nested", "moodlit.db")),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestLoadAllWithoutData(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			log, err := store.LoadAll()
			if err != nil {
				t.Fatalf("LoadAll on missing store failed: %v", err)
			}
			if log == nil {
				t.Fatal("LoadAll returned nil map")
			}
			if len(log) != 0 {
				t.Errorf("expected empty log, got %d buckets", len(log))
			}
		})
	}
}

func TestAppendThenLoadAll(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			first := models.Entry{Mood: models.MoodHappy, Activity: 8, Notes: "sunny"}
			second := models.Entry{Mood: models.MoodStressed, Activity: 3}
			other := models.Entry{Mood: models.MoodSad, Activity: 4}

			if err := store.Append("2024-06-01", first); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
			if err := store.Append("2024-06-03", other); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
			if err := store.Append("2024-06-01", second); err != nil {
				t.Fatalf("Append failed: %v", err)
			}

			log, err := store.LoadAll()
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}

			bucket := log["2024-06-01"]
			if len(bucket) != 2 {
				t.Fatalf("expected 2 entries on 2024-06-01, got %d", len(bucket))
			}
			last := bucket[len(bucket)-1]
			want := second
			want.Date = "2024-06-01"
			if last != want {
				t.Errorf("last entry = %+v, want %+v", last, want)
			}
			if bucket[0].Notes != "sunny" || bucket[0].Date != "2024-06-01" {
				t.Errorf("first entry not preserved: %+v", bucket[0])
			}
			if len(log["2024-06-03"]) != 1 {
				t.Errorf("expected 1 entry on 2024-06-03, got %d", len(log["2024-06-03"]))
			}
		})
	}
}

func TestClearThenLoadAll(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Append("2024-06-01", models.Entry{Mood: models.MoodHappy, Activity: 5}); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
			if err := store.Clear(); err != nil {
				t.Fatalf("Clear failed: %v", err)
			}

			log, err := store.LoadAll()
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if len(log) != 0 {
				t.Errorf("expected empty log after Clear, got %v", log)
			}

			// The store stays usable after a clear
			if err := store.Append("2024-06-02", models.Entry{Mood: models.MoodAngry, Activity: 2}); err != nil {
				t.Fatalf("Append after Clear failed: %v", err)
			}
			log, err = store.LoadAll()
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if log.Len() != 1 {
				t.Errorf("expected 1 entry after re-append, got %d", log.Len())
			}
		})
	}
}

func TestInitRefusesExistingStore(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			store.Close()
			if err := store.Init(); err == nil {
				t.Error("expected second Init to fail")
			}
		})
	}
}

func TestNewSelectsImplementation(t *testing.T) {
	tests := []struct {
		path       string
		wantSQLite bool
	}{
		{"moodlit.json", false},
		{"db.json", false},
		{"moodlit.db", true},
		{"moodlit.SQLITE", true},
		{"moodlit", false},
	}

	for _, tt := range tests {
		if got := IsSQLitePath(tt.path); got != tt.wantSQLite {
			t.Errorf("IsSQLitePath(%q) = %v, want %v", tt.path, got, tt.wantSQLite)
		}
	}
}

func TestCopyAll(t *testing.T) {
	stores := providers(t)
	src, dst := stores["json"], stores["sqlite"]

	src.Append("2024-06-03", models.Entry{Mood: models.MoodSad, Activity: 4})
	src.Append("2024-06-01", models.Entry{Mood: models.MoodHappy, Activity: 8})
	src.Append("2024-06-01", models.Entry{Mood: models.MoodExcited, Activity: 9, Notes: "second"})

	n, err := CopyAll(src, dst)
	if err != nil {
		t.Fatalf("CopyAll failed: %v", err)
	}
	if n != 3 {
		t.Errorf("copied %d entries, want 3", n)
	}

	log, err := dst.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	bucket := log["2024-06-01"]
	if len(bucket) != 2 || bucket[1].Notes != "second" {
		t.Errorf("bucket order not preserved: %+v", bucket)
	}
}
