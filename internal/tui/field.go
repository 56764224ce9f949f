// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordfall/internal/game"
)

// fieldCell is one terminal cell of the playing field.
type fieldCell struct {
	ch      byte
	seed    int
	powerup bool
	set     bool
}

// composeField places entity views on a width x height cell grid. Later
// entities overwrite earlier ones where they overlap.
func composeField(entities []game.EntityView, width, height int) [][]fieldCell {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	grid := make([][]fieldCell, height)
	for i := range grid {
		grid[i] = make([]fieldCell, width)
	}
	for _, e := range entities {
		if e.Row < 0 || e.Row >= height {
			continue
		}
		for i := 0; i < len(e.Text); i++ {
			x := e.X + i
			if x < 0 || x >= width {
				continue
			}
			grid[e.Row][x] = fieldCell{ch: e.Text[i], seed: e.Seed, powerup: e.Powerup, set: true}
		}
	}
	return grid
}

const (
	shadeCeil  = 0xf0
	shadeFloor = 0x50
)

// shadeColor maps an entity seed to a grayscale color. Slow words carry a
// high seed and render dimmer; scale narrows the usable seed range as the
// background level rises.
func shadeColor(seed, scale int) lipgloss.Color {
	if scale <= 0 {
		scale = 1
	}
	v := shadeCeil - seed*(shadeCeil-shadeFloor)/scale
	if v < shadeFloor {
		v = shadeFloor
	}
	if v > shadeCeil {
		v = shadeCeil
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
}

// renderField turns a cell grid into styled terminal rows. Runs of cells with
// the same style render as one segment to keep the output compact.
func renderField(grid [][]fieldCell, scale int) []string {
	rows := make([]string, len(grid))
	for y, row := range grid {
		var line string
		start := 0
		for start < len(row) {
			end := start
			for end < len(row) && sameStyle(row[end], row[start]) {
				end++
			}
			text := make([]byte, 0, end-start)
			for i := start; i < end; i++ {
				if row[i].set {
					text = append(text, row[i].ch)
				} else {
					text = append(text, ' ')
				}
			}
			c := row[start]
			switch {
			case !c.set:
				line += string(text)
			case c.powerup:
				line += powerupStyle.Render(string(text))
			default:
				line += lipgloss.NewStyle().Foreground(shadeColor(c.seed, scale)).Render(string(text))
			}
			start = end
		}
		rows[y] = line
	}
	return rows
}

func sameStyle(a, b fieldCell) bool {
	if a.set != b.set {
		return false
	}
	if !a.set {
		return true
	}
	return a.seed == b.seed && a.powerup == b.powerup
}
