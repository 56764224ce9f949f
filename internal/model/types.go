// Package model defines shared data structures.
package model

import "time"

// Pools holds the word pools partitioned by length.
type Pools struct {
	Common    []string
	Difficult []string
	Boss      []string
}

// StatsFilter defines filters for stats queries.
type StatsFilter struct {
	Tier  string
	Since *time.Time
	Last  int
}

// RunStats captures a completed game.
type RunStats struct {
	StartedAt         time.Time
	EndedAt           time.Time
	Tier              string
	Score             int
	MaxStreak         int
	MaxCombo          int
	WordsDestroyed    int
	LettersDestroyed  int
	PowerupsDestroyed int
	Reveals           int
	Misses            int
	DurationMs        int64
}

// LetterCount stores per-letter totals: words destroyed starting with the
// letter and individual letters destroyed.
type LetterCount struct {
	Letter  string
	Words   int64
	Letters int64
}

// Totals aggregates lifetime statistics across runs.
type Totals struct {
	GamesPlayed       int64
	WordsDestroyed    int64
	LettersDestroyed  int64
	PowerupsDestroyed int64
	Reveals           int64
	Misses            int64
	HighestCombo      int64
	HighestStreak     int64
	HighestScore      int64
}

// RunAggregate summarizes a run for reporting.
type RunAggregate struct {
	RunID      int64
	EndedAt    time.Time
	Tier       string
	Score      int
	MaxStreak  int
	MaxCombo   int
	DurationMs int64
}
