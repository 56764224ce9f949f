package game

import (
	"fmt"
	"strings"
	"time"
)

// Tier selects the starting difficulty and score multiplier.
type Tier int

const (
	TierEasy Tier = iota
	TierNormal
	TierHard
	TierPractice
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierNormal:
		return "normal"
	case TierHard:
		return "hard"
	case TierPractice:
		return "practice"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name to a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return TierEasy, nil
	case "normal":
		return TierNormal, nil
	case "hard":
		return TierHard, nil
	case "practice":
		return TierPractice, nil
	default:
		return TierEasy, fmt.Errorf("unknown tier %q (easy, normal, hard, practice)", s)
	}
}

// BaseLevel is the background level the tier starts at.
func (t Tier) BaseLevel() int {
	switch t {
	case TierNormal:
		return 5
	case TierHard:
		return 11
	case TierPractice:
		return 100
	default:
		return 0
	}
}

// Multiplier is the score multiplier applied to every award and penalty.
func (t Tier) Multiplier() int {
	switch t {
	case TierNormal:
		return 2
	case TierHard:
		return 4
	default:
		return 1
	}
}

// Scored reports whether runs on this tier reach the statistics store.
func (t Tier) Scored() bool { return t != TierPractice }

const (
	baseWordDifficulty = 5
	bossRoll           = 20
	difficultRoll      = 10

	baseSpawnInterval = 1250 * time.Millisecond
	spawnIntervalStep = 25 * time.Millisecond
	minSpawnInterval  = 250 * time.Millisecond

	baseFallSpeed = 1.2 // rows per second
	fallSpeedStep = 0.03
	maxFallSpeed  = 1.8

	baseWordScale = 50
	minWordScale  = 30
)

// Params are the session parameters derived from the background level.
type Params struct {
	WordDifficulty int
	SpawnInterval  time.Duration
	FallSpeed      float64
	WordScale      int
}

// ParamsForLevel derives session parameters from a background level. The
// spawn interval is clamped so it can never reach zero.
func ParamsForLevel(level int) Params {
	interval := baseSpawnInterval - time.Duration(level)*spawnIntervalStep
	if interval < minSpawnInterval {
		interval = minSpawnInterval
	}
	speed := baseFallSpeed + fallSpeedStep*float64(level)
	if speed > maxFallSpeed {
		speed = maxFallSpeed
	}
	scale := baseWordScale - level
	if scale < minWordScale {
		scale = minWordScale
	}
	return Params{
		WordDifficulty: baseWordDifficulty + level,
		SpawnInterval:  interval,
		FallSpeed:      speed,
		WordScale:      scale,
	}
}
