package game

// Cue names an audio event emitted by the session. The core never plays
// sound; a CuePlayer collaborator does.
type Cue int

const (
	CueHit Cue = iota
	CuePunchHit
	CueMiss
	CueDestroy
	CueReveal
	CueGameOver
	CuePause
	CueResume
)

// CuePlayer receives named cue events. Implementations must clamp tier
// indexes that exceed their defined cue sets.
type CuePlayer interface {
	Play(c Cue)
	PlayPowerup(kind PowerupKind)
	PlayStreakTier(tier int)
	PlayComboTier(tier int)
}

// NopCues discards every cue. Used when audio is muted or unavailable, and
// in tests.
type NopCues struct{}

func (NopCues) Play(Cue) {}
func (NopCues) PlayPowerup(PowerupKind) {}
func (NopCues) PlayStreakTier(int) {}
func (NopCues) PlayComboTier(int) {}
