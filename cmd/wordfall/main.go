// Package main provides the CLI entrypoint for wordfall.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordfall/internal/audio"
	"github.com/verte-zerg/wordfall/internal/config"
	"github.com/verte-zerg/wordfall/internal/game"
	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/stats"
	"github.com/verte-zerg/wordfall/internal/statsui"
	"github.com/verte-zerg/wordfall/internal/store"
	"github.com/verte-zerg/wordfall/internal/tui"
	"github.com/verte-zerg/wordfall/internal/wordlist"
)

const defaultTier = "easy"

var (
	playTier  string
	playWords string
	playMute  bool

	statsTier  string
	statsSince string
	statsLast  int
	statsPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordfall",
		Short:         "TUI falling-words typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playTier, "tier", defaultTier, "difficulty tier (easy, normal, hard, practice)")
	rootCmd.Flags().StringVar(&playWords, "words", "", "word list path (default: XDG config)")
	rootCmd.Flags().BoolVar(&playMute, "mute", false, "start with sound off")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "tier", &playTier, fileCfg.Game.Tier)
	applyStringConfig(cmd, "words", &playWords, fileCfg.Game.Words)
	applyBoolConfig(cmd, "mute", &playMute, fileCfg.Game.Mute)

	tier, err := game.ParseTier(playTier)
	if err != nil {
		return err
	}

	wordPath := playWords
	if wordPath == "" {
		wordPath = config.DefaultWordListPath()
	}
	pools, err := wordlist.LoadPools(wordPath)
	if err != nil {
		return wordListLoadError(wordPath, err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	player := audio.NewPlayer(playMute)
	defer player.Close()

	m := tui.NewModel(tui.Options{
		Tier:  tier,
		Pools: pools,
		Store: st,
		Cues:  player,
		Muted: playMute,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsTier, "tier", "", "tier filter (easy, normal, hard)")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N runs")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsTier != "" {
		tier, err := game.ParseTier(statsTier)
		if err != nil {
			return err
		}
		statsTier = tier.String()
	}
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	filter := model.StatsFilter{
		Tier:  statsTier,
		Since: sinceTime,
		Last:  statsLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain {
		report, err := stats.BuildReport(cmd.Context(), st, filter)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		return stats.WriteReport(cmd.OutOrStdout(), report, stats.TerminalWidth())
	}

	m := statsui.NewModel(st, filter)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordfall configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# tier = %q          # Difficulty tier (easy, normal, hard, practice)
# words = ""            # Word list path
# mute = false          # Start with sound off
`, defaultTier)
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		"Provide one word per line (lowercase letters only count).",
		"Point --words at an existing list or copy one into place.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
