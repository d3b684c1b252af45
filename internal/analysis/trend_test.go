package analysis

import (
	"reflect"
	"testing"

	"github.com/julianstephens/moodlit/internal/models"
)

func TestBuildTrendZeroFillsGaps(t *testing.T) {
	trend := BuildTrend(juneLog())

	if trend.NoData {
		t.Fatal("trend reported no data")
	}
	want := []float64{8, 0, 4}
	if got := trend.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	wantDates := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	for i, p := range trend.Points {
		if got := p.Date.Format("2006-01-02"); got != wantDates[i] {
			t.Errorf("point %d date = %s, want %s", i, got, wantDates[i])
		}
	}
	if trend.Points[1].Count != 0 {
		t.Errorf("gap day should have no entries, got %d", trend.Points[1].Count)
	}
}

func TestBuildTrendAveragesPerDay(t *testing.T) {
	log := models.Log{
		"2024-02-28": {{Mood: models.MoodHappy, Activity: 7}, {Mood: models.MoodSad, Activity: 2}},
		"2024-03-01": {{Mood: models.MoodNeutral, Activity: 5}},
	}

	trend := BuildTrend(log)

	// 2024 is a leap year: 28 Feb, 29 Feb, 1 Mar
	want := []float64{4.5, 0, 5}
	if got := trend.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if trend.Points[0].Count != 2 {
		t.Errorf("Count = %d, want 2", trend.Points[0].Count)
	}
}

func TestBuildTrendLengthMatchesRange(t *testing.T) {
	log := models.Log{
		"2023-12-30": {{Mood: models.MoodHappy, Activity: 1}},
		"2024-01-02": {{Mood: models.MoodHappy, Activity: 10}},
	}

	trend := BuildTrend(log)
	if trend.Days() != 4 {
		t.Errorf("Days() = %d, want 4", trend.Days())
	}
	if trend.Start.Format("2006-01-02") != "2023-12-30" || trend.End.Format("2006-01-02") != "2024-01-02" {
		t.Errorf("range = %s..%s", trend.Start, trend.End)
	}
}

func TestBuildTrendSingleDay(t *testing.T) {
	log := models.Log{"2024-06-01": {{Mood: models.MoodHappy, Activity: 6}}}

	trend := BuildTrend(log)
	if got := trend.Values(); !reflect.DeepEqual(got, []float64{6}) {
		t.Errorf("Values() = %v, want [6]", got)
	}
}

func TestBuildTrendEmptyStore(t *testing.T) {
	trend := BuildTrend(models.Log{})

	if !trend.NoData {
		t.Error("expected NoData for an empty store")
	}
	if len(trend.Points) != 0 {
		t.Errorf("expected no series, got %d points", len(trend.Points))
	}
}

func TestBuildTrendBetween(t *testing.T) {
	trend, err := BuildTrendBetween(juneLog(), date(t, "2024-05-30"), date(t, "2024-06-02"))
	if err != nil {
		t.Fatalf("BuildTrendBetween failed: %v", err)
	}

	want := []float64{0, 0, 8, 0}
	if got := trend.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestBuildTrendBetweenRejectsInvertedWindow(t *testing.T) {
	if _, err := BuildTrendBetween(juneLog(), date(t, "2024-06-03"), date(t, "2024-06-01")); err == nil {
		t.Error("expected error for inverted window")
	}
}
