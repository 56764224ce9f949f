package game

import (
	"math"
	"math/rand"
	"time"
)

const (
	powerupDuration = 10 * time.Second

	minPowerupGate      = 1 * time.Second
	maxPowerupGate      = 30 * time.Second
	powerupGateStep     = 1 * time.Second
	bombAwardFactor     = 5
	scorePowerupFactor  = 1.5
	punchMultiplierHigh = 25
	punchMultiplierLow  = 2
)

var powerupKinds = []PowerupKind{
	KindBomb, KindClear, KindScore, KindFreeze, KindReveal, KindPunch, KindSweep,
}

// Flavor words a powerup can spawn as.
var powerupWords = map[PowerupKind][]string{
	KindBomb:   {"bomb", "boom", "explode", "explosion", "nuke"},
	KindClear:  {"clear", "wipe", "erase"},
	KindScore:  {"score", "points"},
	KindFreeze: {"freeze", "stop", "pause"},
	KindReveal: {"reveal", "show"},
	KindPunch:  {"punch"},
	KindSweep:  {"sweep", "multi", "multiple"},
}

func randomPowerup(rnd *rand.Rand) (PowerupKind, string) {
	kind := powerupKinds[rnd.Intn(len(powerupKinds))]
	words := powerupWords[kind]
	return kind, words[rnd.Intn(len(words))]
}

// maxGateFor shrinks the gate ceiling as the background level rises, never
// below the floor.
func maxGateFor(level int) time.Duration {
	d := maxPowerupGate - time.Duration(level)*powerupGateStep
	if d < minPowerupGate {
		d = minPowerupGate
	}
	return d
}

// activate fires a captured powerup exactly once. One-shot kinds apply their
// effect immediately; freeze/reveal/punch/sweep toggle a channel that its
// own expiry timer clears. Every activation drops the captured reference and
// raises the alert tint.
func (s *Session) activate(kind PowerupKind) {
	switch kind {
	case KindBomb:
		s.bomb()
	case KindClear:
		if len(s.words) > 0 {
			s.words = s.words[:0]
			s.destroyedWord = true
		}
	case KindScore:
		bonus := int(math.Round(float64(s.scoring.score)*scorePowerupFactor)) - s.scoring.score
		s.scoring.add(bonus)
		s.pointFlashAdd(bonus)
	case KindFreeze:
		s.toggleFreeze()
	case KindReveal:
		s.toggleReveal()
	case KindPunch:
		s.togglePunch()
	case KindSweep:
		s.toggleSweep()
	}

	if kind != KindPunch && kind != KindSweep {
		s.cues.PlayPowerup(kind)
	}
	s.alert = alertMax
	s.powerup = nil
}

// bomb removes a random half of the active words, awarding five word values
// apiece.
func (s *Session) bomb() {
	n := int(math.Round(float64(len(s.words)) * 0.5))
	if n == 0 {
		return
	}
	s.rnd.Shuffle(len(s.words), func(i, j int) {
		s.words[i], s.words[j] = s.words[j], s.words[i]
	})
	award := s.scoring.scale(wordPoints * bombAwardFactor)
	for i := 0; i < n; i++ {
		s.scoring.add(award)
		s.pointFlashAdd(award)
	}
	s.words = append(s.words[:0], s.words[n:]...)
	s.destroyedWord = true
}

func (s *Session) toggleFreeze() {
	s.frozen = !s.frozen
	if s.frozen {
		s.freezeLeft.set(powerupDuration)
	} else {
		s.freezeLeft.stop()
	}
}

// toggleReveal flips the session-wide visibility mode, re-encoding every
// active word without losing match progress.
func (s *Session) toggleReveal() {
	s.revealFx = !s.revealFx
	s.visible = !s.visible
	if s.visible {
		for _, w := range s.words {
			w.PartiallyReveal()
		}
	} else {
		for _, w := range s.words {
			w.PartiallyHide()
		}
	}
	if s.revealFx {
		s.revealLeft.set(powerupDuration)
	} else {
		s.revealLeft.stop()
	}
}

func (s *Session) togglePunch() {
	s.punchFx = !s.punchFx
	if s.punchFx {
		s.punchLeft.set(powerupDuration)
	} else {
		s.punchLeft.stop()
	}
}

func (s *Session) toggleSweep() {
	s.sweepFx = !s.sweepFx
	if s.sweepFx {
		s.sweepLeft.set(powerupDuration)
	} else {
		s.sweepLeft.stop()
	}
}

// punchMultiplier resolves the knock amplification with punch taking
// precedence over sweep.
func (s *Session) punchMultiplier() int {
	switch {
	case s.punchFx:
		return punchMultiplierHigh
	case s.sweepFx:
		return punchMultiplierLow
	default:
		return 1
	}
}
