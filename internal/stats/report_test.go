package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
)

func TestWriteReportEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteReport(&b, Report{}, 80); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if !strings.Contains(b.String(), "No runs found.") {
		t.Fatalf("empty report output: %q", b.String())
	}
}

func TestWriteReportSections(t *testing.T) {
	ended := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	report := Report{
		Totals: model.Totals{
			GamesPlayed:    2,
			WordsDestroyed: 14,
			HighestScore:   300,
		},
		Runs: []model.RunAggregate{
			{RunID: 1, EndedAt: ended, Tier: "easy", Score: 100, MaxStreak: 8, MaxCombo: 2, DurationMs: 61000},
			{RunID: 2, EndedAt: ended.Add(time.Hour), Tier: "hard", Score: 300, MaxStreak: 15, MaxCombo: 4, DurationMs: 30000},
		},
		Letters: []model.LetterCount{
			{Letter: "a", Words: 3, Letters: 20},
			{Letter: "z", Words: 5, Letters: 7},
		},
	}
	var b strings.Builder
	if err := WriteReport(&b, report, 80); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Summary", "Games played: 2", "Score Trend", "Runs", "hard", "Letters"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	// Letter rows sort by words destroyed.
	if strings.Index(out, "z") > strings.Index(out, "Letters") &&
		strings.Index(out, "\nz") > strings.Index(out, "\na") {
		t.Fatalf("letters must sort by destroyed words:\n%s", out)
	}
}
