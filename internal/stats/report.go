// Package stats contains statistics collection and reporting.
package stats

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Totals  model.Totals
	Runs    []model.RunAggregate
	Letters []model.LetterCount
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, filter model.StatsFilter) (Report, error) {
	totals, err := st.Totals(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	runs, err := st.ListRuns(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	letters, err := st.LetterCounts(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	return Report{Totals: totals, Runs: runs, Letters: letters}, nil
}

// WriteReport prints a plain-text report sized to the given terminal width.
func WriteReport(w io.Writer, r Report, width int) error {
	if r.Totals.GamesPlayed == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	if err := writeSummary(w, r.Totals); err != nil {
		return err
	}
	if err := writeScoreTrend(w, r.Runs, width); err != nil {
		return err
	}
	if err := writeRunTable(w, r.Runs); err != nil {
		return err
	}
	return writeLetterTable(w, r.Letters)
}

func writeSummary(w io.Writer, t model.Totals) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	lines := []struct {
		label string
		value int64
	}{
		{"Games played", t.GamesPlayed},
		{"Words destroyed", t.WordsDestroyed},
		{"Letters destroyed", t.LettersDestroyed},
		{"Powerups destroyed", t.PowerupsDestroyed},
		{"Reveals used", t.Reveals},
		{"Misses", t.Misses},
		{"Highest score", t.HighestScore},
		{"Highest streak", t.HighestStreak},
		{"Highest combo", t.HighestCombo},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s: %d\n", line.label, line.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func writeScoreTrend(w io.Writer, runs []model.RunAggregate, width int) error {
	if len(runs) < 2 {
		return nil
	}
	scores := make([]float64, len(runs))
	for i, run := range runs {
		scores[i] = float64(run.Score)
	}
	if width > 10 && len(scores) > width-2 {
		scores = scores[len(scores)-(width-2):]
	}
	if _, err := fmt.Fprintln(w, "Score Trend"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(MovingAverage(scores, 3))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func writeRunTable(w io.Writer, runs []model.RunAggregate) error {
	if len(runs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Runs"); err != nil {
		return err
	}
	headers := []string{"Ended", "Tier", "Score", "Streak", "Combo", "Duration"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.EndedAt.Format("2006-01-02 15:04"),
			run.Tier,
			fmt.Sprintf("%d", run.Score),
			fmt.Sprintf("%d", run.MaxStreak),
			fmt.Sprintf("%d", run.MaxCombo),
			(time.Duration(run.DurationMs) * time.Millisecond).Round(time.Second).String(),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func writeLetterTable(w io.Writer, letters []model.LetterCount) error {
	if len(letters) == 0 {
		return nil
	}
	// Most destroyed words first.
	sorted := make([]model.LetterCount, len(letters))
	copy(sorted, letters)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Words == sorted[j].Words {
			return sorted[i].Letter < sorted[j].Letter
		}
		return sorted[i].Words > sorted[j].Words
	})

	if _, err := fmt.Fprintln(w, "Letters"); err != nil {
		return err
	}
	headers := []string{"Letter", "Words", "Letters"}
	rows := make([][]string, 0, len(sorted))
	for _, lc := range sorted {
		rows = append(rows, []string{
			lc.Letter,
			fmt.Sprintf("%d", lc.Words),
			fmt.Sprintf("%d", lc.Letters),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
