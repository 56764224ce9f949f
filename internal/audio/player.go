// Package audio renders short procedural cues with beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/verte-zerg/wordfall/internal/game"
)

const (
	maxStreakTier = 9
	maxComboTier  = 3
)

// Player maps game cues to short synthesized tones. A failed speaker
// initialization degrades to silence instead of failing the game.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	muted   bool
}

// NewPlayer initializes the speaker and returns a cue player.
func NewPlayer(muted bool) *Player {
	p := &Player{mixer: &beep.Mixer{}, muted: muted}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// SetMuted silences or restores cue playback.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// ToggleMute flips the mute state and reports the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

func (p *Player) play(streamers ...beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Seq(streamers...))
	speaker.Unlock()
}

// Play renders a one-shot cue.
func (p *Player) Play(cue game.Cue) {
	switch cue {
	case game.CueHit:
		p.play(newTone(880, 30*time.Millisecond, 0.2))
	case game.CuePunchHit:
		p.play(newTone(220, 60*time.Millisecond, 0.3))
	case game.CueMiss:
		p.play(newBuzz(110, 150*time.Millisecond, 0.25))
	case game.CueDestroy:
		p.play(
			newTone(987.77, 60*time.Millisecond, 0.25),
			newTone(1318.51, 90*time.Millisecond, 0.25),
		)
	case game.CueReveal:
		p.play(
			newTone(660, 40*time.Millisecond, 0.2),
			newTone(440, 60*time.Millisecond, 0.2),
		)
	case game.CueGameOver:
		p.play(
			newTone(440, 150*time.Millisecond, 0.3),
			newTone(349.23, 150*time.Millisecond, 0.3),
			newTone(293.66, 300*time.Millisecond, 0.3),
		)
	case game.CuePause:
		p.play(newTone(330, 50*time.Millisecond, 0.2))
	case game.CueResume:
		p.play(newTone(660, 50*time.Millisecond, 0.2))
	}
}

// PlayPowerup renders the activation chime for a powerup kind.
func (p *Player) PlayPowerup(kind game.PowerupKind) {
	freq := powerupFreq(kind)
	p.play(
		newTone(freq, 70*time.Millisecond, 0.25),
		newTone(freq*2, 110*time.Millisecond, 0.25),
	)
}

func powerupFreq(kind game.PowerupKind) float64 {
	switch kind {
	case game.KindBomb:
		return 196
	case game.KindClear:
		return 262
	case game.KindScore:
		return 330
	case game.KindFreeze:
		return 392
	case game.KindReveal:
		return 494
	default:
		return 440
	}
}

// PlayStreakTier renders a rising arpeggio note for a streak milestone.
func (p *Player) PlayStreakTier(tier int) {
	p.play(newTone(semitone(660, clampTier(tier, maxStreakTier)), 80*time.Millisecond, 0.25))
}

// PlayComboTier renders the payout chime for a combo flush.
func (p *Player) PlayComboTier(tier int) {
	tier = clampTier(tier, maxComboTier)
	base := semitone(523.25, tier*4)
	p.play(
		newTone(base, 60*time.Millisecond, 0.25),
		newTone(semitone(base, 7), 100*time.Millisecond, 0.25),
	)
}

func clampTier(tier, max int) int {
	if tier < 0 {
		return 0
	}
	if tier > max {
		return max
	}
	return tier
}
