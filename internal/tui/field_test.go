package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/wordfall/internal/game"
)

func rowText(row []fieldCell) string {
	var b strings.Builder
	for _, c := range row {
		if c.set {
			b.WriteByte(c.ch)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func TestComposeFieldPlacesEntities(t *testing.T) {
	grid := composeField([]game.EntityView{
		{Text: "cat", X: 2, Row: 1, Seed: 10},
		{Text: "dog", X: 0, Row: 3, Powerup: true},
	}, 8, 5)

	if got := rowText(grid[1]); got != "  cat   " {
		t.Fatalf("row 1 %q", got)
	}
	if got := rowText(grid[3]); got != "dog     " {
		t.Fatalf("row 3 %q", got)
	}
	if !grid[3][0].powerup {
		t.Fatalf("powerup flag must carry into the cells")
	}
	if grid[1][2].seed != 10 {
		t.Fatalf("seed must carry into the cells")
	}
}

func TestComposeFieldClipsAtEdges(t *testing.T) {
	grid := composeField([]game.EntityView{
		{Text: "edge", X: 6, Row: 0},
		{Text: "above", X: 0, Row: -1},
		{Text: "below", X: 0, Row: 10},
	}, 8, 4)

	if got := rowText(grid[0]); got != "      ed" {
		t.Fatalf("row 0 %q", got)
	}
	for y := 1; y < 4; y++ {
		if got := rowText(grid[y]); strings.TrimSpace(got) != "" {
			t.Fatalf("row %d must stay empty: %q", y, got)
		}
	}
}

func TestComposeFieldOverlapLastWins(t *testing.T) {
	grid := composeField([]game.EntityView{
		{Text: "aaa", X: 0, Row: 0, Seed: 1},
		{Text: "bb", X: 1, Row: 0, Seed: 2},
	}, 5, 1)
	if got := rowText(grid[0]); got != "abb  " {
		t.Fatalf("row 0 %q", got)
	}
	if grid[0][1].seed != 2 {
		t.Fatalf("later entity must own the overlapping cell")
	}
}

func TestShadeColorBounds(t *testing.T) {
	if shadeColor(0, 50) != shadeColor(0, 30) {
		t.Fatalf("seed 0 must render at full brightness regardless of scale")
	}
	dim := string(shadeColor(50, 50))
	if dim != "#505050" {
		t.Fatalf("max seed at full scale: %s", dim)
	}
	if string(shadeColor(100, 30)) != "#505050" {
		t.Fatalf("shade must clamp at the floor")
	}
}

func TestShadeColorScaleNarrowsRange(t *testing.T) {
	wide := string(shadeColor(25, 50))
	narrow := string(shadeColor(25, 30))
	if wide <= narrow {
		t.Fatalf("a narrow scale must dim the same seed more: %s vs %s", wide, narrow)
	}
}

func TestRenderFieldRowCount(t *testing.T) {
	rows := renderField(composeField(nil, 4, 3), 50)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row != "    " {
			t.Fatalf("empty field row %q", row)
		}
	}
}
