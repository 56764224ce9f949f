// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordfall/internal/game"
	"github.com/verte-zerg/wordfall/internal/model"
	statsPkg "github.com/verte-zerg/wordfall/internal/stats"
	"github.com/verte-zerg/wordfall/internal/store"
)

type screen int

const (
	screenMenu screen = iota
	screenPlaying
)

// tickRate drives the fixed-timestep game loop.
const tickRate = time.Second / 60

type tickMsg time.Time

var menuTiers = []game.Tier{game.TierEasy, game.TierNormal, game.TierHard, game.TierPractice}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	menuStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	flashStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	powerupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// muteToggler is implemented by cue players with a mute switch.
type muteToggler interface {
	ToggleMute() bool
}

// Options configures the game TUI.
type Options struct {
	Tier  game.Tier
	Pools model.Pools
	Store *store.Store
	Cues  game.CuePlayer
	Muted bool
}

// Model implements the Bubble Tea game UI.
type Model struct {
	opts Options

	screen screen
	width  int
	height int

	menuIndex int
	muted     bool
	startErr  string

	session    *game.Session
	recorder   *statsPkg.RunRecorder
	lastTick   time.Time
	ticking    bool
	revealHeld bool
	saved      bool
}

// NewModel constructs the game TUI model.
func NewModel(opts Options) *Model {
	m := &Model{opts: opts, muted: opts.Muted}
	for i, tier := range menuTiers {
		if tier == opts.Tier {
			m.menuIndex = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.session != nil {
			m.session.Resize(m.fieldWidth(), m.fieldHeight())
		}
		return m, nil
	case tickMsg:
		return m, m.handleTick(time.Time(msg))
	case tea.KeyMsg:
		if m.screen == screenMenu {
			return m, m.handleMenuKey(msg)
		}
		return m, m.handleGameKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleTick(now time.Time) tea.Cmd {
	m.ticking = false
	if m.screen != screenPlaying || m.session == nil || m.session.Paused() {
		return nil
	}
	dt := now.Sub(m.lastTick)
	m.lastTick = now
	// A stalled terminal must not turn into a giant simulation step.
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}
	if dt > 0 {
		m.session.Advance(dt)
	}
	if m.session.Over() {
		m.finishRun()
		return nil
	}
	return m.armTick()
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuTiers)-1 {
			m.menuIndex++
		}
	case "m":
		if toggler, ok := m.opts.Cues.(muteToggler); ok {
			m.muted = toggler.ToggleMute()
		}
	case "enter":
		return m.startGame()
	}
	return nil
}

func (m *Model) handleGameKey(msg tea.KeyMsg) tea.Cmd {
	if m.session == nil {
		m.screen = screenMenu
		return nil
	}
	if m.session.Over() {
		switch msg.String() {
		case "ctrl+c", "q":
			return tea.Quit
		case " ":
			return m.startGame()
		case "esc", "enter":
			m.session = nil
			m.screen = screenMenu
		}
		return nil
	}
	if m.session.Paused() {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "q":
			// Abandoned runs are not saved.
			m.session = nil
			m.recorder = nil
			m.screen = screenMenu
			return nil
		case "r":
			return m.startGame()
		case "esc":
			m.session.TogglePause()
			m.lastTick = time.Now()
			return m.armTick()
		}
		return nil
	}

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.session.TogglePause()
		return nil
	case "enter":
		// Terminals report no key release, so the reveal key alternates.
		if m.revealHeld {
			m.session.RevealUp()
			m.revealHeld = false
		} else {
			m.session.RevealDown()
			m.revealHeld = true
		}
		return nil
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			if r >= 'a' && r <= 'z' {
				m.session.Type(byte(r))
			}
		}
	}
	return nil
}

func (m *Model) startGame() tea.Cmd {
	tier := menuTiers[m.menuIndex]
	var rec game.Recorder
	m.recorder = nil
	if tier.Scored() && m.opts.Store != nil {
		m.recorder = statsPkg.NewRunRecorder(tier.String())
		rec = m.recorder
	}
	session, err := game.NewSession(game.Config{
		Tier:        tier,
		FieldWidth:  m.fieldWidth(),
		FieldHeight: m.fieldHeight(),
		Pools:       m.opts.Pools,
		Cues:        m.opts.Cues,
		Recorder:    rec,
	})
	if err != nil {
		m.startErr = err.Error()
		return nil
	}
	m.startErr = ""
	m.session = session
	m.saved = false
	m.revealHeld = false
	m.screen = screenPlaying
	m.lastTick = time.Now()
	return m.armTick()
}

func (m *Model) finishRun() {
	if m.saved || m.recorder == nil {
		return
	}
	m.saved = true
	run, letters := m.recorder.Finish(time.Now())
	if _, err := m.opts.Store.InsertRun(context.Background(), run, letters); err != nil {
		logErrf("failed to save run: %v\n", err)
	}
}

// armTick schedules the next frame unless one is already in flight, so at
// most one tick chain ever lives across pause, resume, and restart.
func (m *Model) armTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) fieldWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// fieldHeight leaves one row for the HUD and one for the footer.
func (m *Model) fieldHeight() int {
	if m.height <= 2 {
		return 22
	}
	return m.height - 2
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenMenu {
		return m.viewMenu()
	}
	return m.viewGame()
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("wordfall"))
	b.WriteString("\n\n")
	for i, tier := range menuTiers {
		line := "  " + tier.String()
		style := menuStyle
		if i == m.menuIndex {
			line = "> " + tier.String()
			style = cursorStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	sound := "sound on"
	if m.muted {
		sound = "sound off"
	}
	b.WriteString(hudStyle.Render(fmt.Sprintf("enter start · m %s · q quit", sound)))
	if m.startErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.startErr))
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m *Model) viewGame() string {
	if m.session == nil {
		return ""
	}
	snap := m.session.Snapshot()
	width := m.fieldWidth()
	height := m.fieldHeight()

	header := m.renderHUD(snap, width)
	var body string
	switch {
	case snap.Over:
		body = m.renderOverlay(width, height,
			overlayStyle.Render("game over"),
			hudStyle.Render(fmt.Sprintf("score %d · streak %d · combo %d", snap.Score, snap.Streak, snap.Combo)),
			hudStyle.Render("space retry · esc menu · q quit"))
	case snap.Paused:
		body = m.renderOverlay(width, height,
			overlayStyle.Render("paused"),
			hudStyle.Render("esc resume · r restart · q menu"))
	default:
		rows := renderField(composeField(snap.Entities, width, height), snap.WordScale)
		body = strings.Join(rows, "\n")
	}
	footer := m.renderFooter(snap)
	return header + "\n" + body + "\n" + footer
}

func (m *Model) renderOverlay(width, height int, lines ...string) string {
	content := strings.Join(lines, "\n")
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m *Model) renderHUD(snap game.Snapshot, width int) string {
	segments := []string{
		fmt.Sprintf("score %d", snap.Score),
		fmt.Sprintf("streak %d", snap.Streak),
		fmt.Sprintf("combo %d", snap.Combo),
		fmt.Sprintf("level %d", snap.Level),
		snap.Tier.String(),
	}
	line := strings.Join(segments, "  ")
	style := hudStyle
	if snap.Alert > 0 {
		style = lipgloss.NewStyle().Foreground(alertColor(snap.Alert))
	}
	return style.Render(fitWidth(line, width))
}

func (m *Model) renderFooter(snap game.Snapshot) string {
	var segments []string
	if snap.FooterWord != "" {
		segments = append(segments, powerupStyle.Render(snap.FooterWord))
	}
	if snap.PointFlash != 0 {
		segments = append(segments, flashStyle.Render(fmt.Sprintf("%+d", snap.PointFlash)))
	}
	if snap.LevelNote != "" {
		segments = append(segments, flashStyle.Render(snap.LevelNote))
	}
	if snap.Frozen {
		segments = append(segments, hudStyle.Render("frozen"))
	}
	if snap.Revealed {
		segments = append(segments, hudStyle.Render("revealed"))
	}
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, "  ")
}

// alertColor fades from the HUD gray toward red as the alert level rises.
// The alert peaks at 0.7 and decays over time.
func alertColor(alert float64) lipgloss.Color {
	if alert < 0 {
		alert = 0
	}
	if alert > 0.7 {
		alert = 0.7
	}
	frac := alert / 0.7
	r := 0x6e + int(frac*float64(0xff-0x6e))
	gb := 0x6e - int(frac*float64(0x6e-0x4d))
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, gb, gb))
}

// fitWidth truncates a plain segment line to the terminal width. Styled
// segments are measured by printable width.
func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
