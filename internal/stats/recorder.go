// Package stats contains statistics collection and reporting.
package stats

import (
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
)

// RunRecorder accumulates the counters of a single game run.
type RunRecorder struct {
	startedAt time.Time
	tier      string

	words    int
	letters  int
	powerups int
	reveals  int
	misses   int

	maxStreak int
	maxCombo  int
	maxScore  int

	wordInitials [26]int64
	letterHits   [26]int64
}

// NewRunRecorder creates a recorder for a run played on the given tier.
func NewRunRecorder(tier string) *RunRecorder {
	return &RunRecorder{tier: tier}
}

// GameStarted marks the beginning of the run.
func (r *RunRecorder) GameStarted() {
	r.startedAt = time.Now()
}

// WordDestroyed counts a completed word by its initial letter.
func (r *RunRecorder) WordDestroyed(initial byte) {
	r.words++
	if initial >= 'a' && initial <= 'z' {
		r.wordInitials[initial-'a']++
	}
}

// LetterDestroyed counts a correctly typed letter.
func (r *RunRecorder) LetterDestroyed(letter byte) {
	r.letters++
	if letter >= 'a' && letter <= 'z' {
		r.letterHits[letter-'a']++
	}
}

// PowerupDestroyed counts an activated powerup.
func (r *RunRecorder) PowerupDestroyed() { r.powerups++ }

// RevealUsed counts a manual reveal.
func (r *RunRecorder) RevealUsed() { r.reveals++ }

// LetterMissed counts a keystroke that matched nothing.
func (r *RunRecorder) LetterMissed() { r.misses++ }

// ObserveStreak tracks the highest streak reached before a flush.
func (r *RunRecorder) ObserveStreak(n int) {
	if n > r.maxStreak {
		r.maxStreak = n
	}
}

// ObserveCombo tracks the highest combo reached before a flush.
func (r *RunRecorder) ObserveCombo(n int) {
	if n > r.maxCombo {
		r.maxCombo = n
	}
}

// ObserveScore tracks the highest score reached during the run.
func (r *RunRecorder) ObserveScore(n int) {
	if n > r.maxScore {
		r.maxScore = n
	}
}

// Finish closes the run and returns its stats and per-letter counts.
func (r *RunRecorder) Finish(endedAt time.Time) (model.RunStats, []model.LetterCount) {
	started := r.startedAt
	if started.IsZero() {
		started = endedAt
	}
	run := model.RunStats{
		StartedAt:         started,
		EndedAt:           endedAt,
		Tier:              r.tier,
		Score:             r.maxScore,
		MaxStreak:         r.maxStreak,
		MaxCombo:          r.maxCombo,
		WordsDestroyed:    r.words,
		LettersDestroyed:  r.letters,
		PowerupsDestroyed: r.powerups,
		Reveals:           r.reveals,
		Misses:            r.misses,
		DurationMs:        endedAt.Sub(started).Milliseconds(),
	}
	var letters []model.LetterCount
	for i := 0; i < 26; i++ {
		if r.wordInitials[i] == 0 && r.letterHits[i] == 0 {
			continue
		}
		letters = append(letters, model.LetterCount{
			Letter:  string(rune('a' + i)),
			Words:   r.wordInitials[i],
			Letters: r.letterHits[i],
		})
	}
	return run, letters
}
