package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
)

const (
	backgroundLevelEvery = 30 * time.Second

	// Manual reveal speeds words up while held.
	revealSpeedBoost = 2.0

	// Knock tuning: each hit kicks the struck word up by a few frames worth
	// of its own fall speed, amplified by punch/sweep.
	knockScale = 5.0 / 60

	alertMax       = 0.7
	alertDecayRate = 0.1 // per second

	flashDuration = time.Second
)

// Config describes a new session.
type Config struct {
	Tier        Tier
	FieldWidth  int
	FieldHeight int
	Pools       model.Pools
	Cues        CuePlayer
	Recorder    Recorder
	Rand        *rand.Rand
}

// Session owns all live game state. It is single-threaded: the presentation
// layer calls Advance once per frame and the input methods between frames.
type Session struct {
	cfg   Config
	rnd   *rand.Rand
	cues  CuePlayer
	stats Recorder

	words   []*Entity
	powerup *Entity
	footer  *footerWord

	scoring *scoring
	params  Params
	bgLevel int

	visible      bool // reveal mode (session-wide display encoding)
	manualReveal bool
	frozen       bool
	revealFx     bool
	punchFx      bool
	sweepFx      bool
	punchMult    int

	spawn         countdown
	gate          stopwatch
	gateThreshold time.Duration
	levelTick     countdown
	freezeLeft    countdown
	revealLeft    countdown
	punchLeft     countdown
	sweepLeft     countdown

	alert      float64
	pointFlash int
	flashLeft  countdown
	levelNote  string
	noteLeft   countdown

	// Transient per-keystroke flags, mirrored into cues after each pass.
	hitLetter     bool
	destroyedWord bool

	paused      bool
	over        bool
	deadlineHit bool
}

// NewSession validates the word pools and starts a session with one word
// already falling.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Pools.Common) == 0 {
		return nil, fmt.Errorf("word pool is empty")
	}
	if cfg.FieldWidth <= 0 || cfg.FieldHeight <= 0 {
		return nil, fmt.Errorf("field dimensions must be positive")
	}
	if cfg.Cues == nil {
		cfg.Cues = NopCues{}
	}
	if cfg.Recorder == nil || !cfg.Tier.Scored() {
		cfg.Recorder = NopRecorder{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		cfg:       cfg,
		rnd:       cfg.Rand,
		cues:      cfg.Cues,
		stats:     cfg.Recorder,
		scoring:   newScoring(cfg.Tier.Multiplier()),
		bgLevel:   cfg.Tier.BaseLevel(),
		punchMult: 1,
	}
	s.params = ParamsForLevel(s.bgLevel)
	s.spawn.set(s.params.SpawnInterval)
	s.levelTick.set(backgroundLevelEvery)
	// The first powerup waits the full gate ceiling; only later cycles
	// draw a random threshold.
	s.gateThreshold = maxGateFor(s.bgLevel)

	s.stats.GameStarted()
	s.spawnWord()
	return s, nil
}

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Resize clamps entity columns into a changed field width.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.cfg.FieldWidth = width
	s.cfg.FieldHeight = height
	for _, w := range s.words {
		if max := width - len(w.Word); max >= 0 && w.X > max {
			w.X = max
		}
	}
}

// fallSpeed is the session-wide fall speed, boosted while a manual reveal is
// held.
func (s *Session) fallSpeed() float64 {
	speed := s.params.FallSpeed
	if s.manualReveal {
		speed *= 1 + revealSpeedBoost
	}
	return speed
}

// Advance runs one simulation frame. While paused nothing advances, so every
// timer effectively extends by the paused duration's complement: paused time
// is never counted.
func (s *Session) Advance(dt time.Duration) {
	if s.paused || s.over || dt <= 0 {
		return
	}

	s.alert -= alertDecayRate * dt.Seconds()
	if s.alert < 0 {
		s.alert = 0
	}
	if s.flashLeft.tick(dt) {
		s.pointFlash = 0
	}
	if s.noteLeft.tick(dt) {
		s.levelNote = ""
	}

	if !s.frozen {
		s.moveWords(dt)
	}

	s.punchMult = s.punchMultiplier()

	switch s.scoring.levelStep() {
	case 1:
		s.levelNote = "Level Up!"
		s.noteLeft.set(flashDuration)
	case -1:
		s.levelNote = "Level Down!"
		s.noteLeft.set(flashDuration)
	}

	s.params = ParamsForLevel(s.bgLevel)

	if !s.frozen {
		if s.spawn.tick(dt) {
			s.spawnWord()
			s.spawn.set(s.params.SpawnInterval)
		}
		if s.gateOpen() {
			s.gate.add(dt)
			if s.gate.total() > s.gateThreshold {
				s.gate.reset()
				s.spawnPowerup()
				s.gateThreshold = s.nextGateThreshold()
			}
		}
	}

	if s.levelTick.tick(dt) {
		s.bgLevel++
		s.levelTick.set(backgroundLevelEvery)
	}
	if s.frozen && (s.freezeLeft.tick(dt) || len(s.words) == 0) {
		s.toggleFreeze()
	}
	if s.revealFx && s.revealLeft.tick(dt) {
		s.toggleReveal()
	}
	if s.punchFx && s.punchLeft.tick(dt) {
		s.togglePunch()
	}
	if s.sweepFx && s.sweepLeft.tick(dt) {
		s.toggleSweep()
	}

	if s.deadlineHit {
		s.finish()
	}
}

// moveWords advances every entity and evicts, without scoring, any that
// crossed the deadline. An eviction ends the session at the end of the frame.
func (s *Session) moveWords(dt time.Duration) {
	speed := s.fallSpeed()
	kept := s.words[:0]
	for _, w := range s.words {
		w.Move(speed, dt)
		if w.PastDeadline(s.cfg.FieldHeight) {
			s.deadlineHit = true
			continue
		}
		kept = append(kept, w)
	}
	s.words = kept
}

func (s *Session) finish() {
	s.over = true
	for _, w := range s.words {
		w.Reveal()
	}
	s.footer = nil
	s.powerup = nil
	s.cues.Play(CueGameOver)
}

// gateOpen reports whether the powerup gate accumulates: no powerup may be
// in flight and neither punch nor sweep active.
func (s *Session) gateOpen() bool {
	if s.powerup != nil || s.punchFx || s.sweepFx {
		return false
	}
	for _, w := range s.words {
		if w.Kind != KindPlain {
			return false
		}
	}
	return true
}

func (s *Session) nextGateThreshold() time.Duration {
	span := maxGateFor(s.bgLevel) - minPowerupGate
	if span <= 0 {
		return minPowerupGate
	}
	return minPowerupGate + time.Duration(s.rnd.Int63n(int64(span)+1))
}

// spawnWord rolls against the word difficulty: high rolls pick longer pools.
// Pools the word list could not fill fall back to the common pool.
func (s *Session) spawnWord() {
	roll := 1 + s.rnd.Intn(s.params.WordDifficulty)
	list := s.cfg.Pools.Common
	switch {
	case roll > bossRoll && len(s.cfg.Pools.Boss) > 0:
		list = s.cfg.Pools.Boss
	case roll > difficultRoll && len(s.cfg.Pools.Difficult) > 0:
		list = s.cfg.Pools.Difficult
	}
	word := list[s.rnd.Intn(len(list))]
	s.words = append(s.words, newEntity(word, s.cfg.FieldWidth, s.visible, s.rnd))
}

func (s *Session) spawnPowerup() {
	kind, word := randomPowerup(s.rnd)
	e := newEntity(word, s.cfg.FieldWidth, s.visible, s.rnd)
	e.Kind = kind
	s.words = append(s.words, e)
}

func (s *Session) pointFlashAdd(points int) {
	s.pointFlash += points
	s.flashLeft.set(flashDuration)
}

// Type handles one character-typed event. Every active entity and the
// captured-powerup footer are offered the letter exactly once before streak
// and combo flushing runs.
func (s *Session) Type(letter byte) {
	if s.paused || s.over {
		return
	}
	if letter < 'a' || letter > 'z' {
		return
	}

	s.hitLetter = false
	s.destroyedWord = false

	if s.footer != nil {
		if s.footer.damage(letter) {
			s.hitLetter = true
		}
		if s.footer != nil && s.footer.done() {
			kind := s.powerup.Kind
			s.footer = nil
			s.activate(kind)
			s.destroyedWord = true
		}
	}

	snapshot := append([]*Entity(nil), s.words...)
	for _, w := range snapshot {
		s.damageEntity(w, letter)
	}

	if s.hitLetter {
		s.scoring.streak++
		if s.punchFx || s.sweepFx {
			s.cues.Play(CuePunchHit)
		} else {
			s.cues.Play(CueHit)
		}
		s.streakCue()
	} else {
		s.cues.Play(CueMiss)
		pen := s.scoring.miss()
		s.pointFlashAdd(-pen)
		s.flushStreak()
		s.stats.LetterMissed()
	}

	if s.destroyedWord {
		s.cues.Play(CueDestroy)
		s.pointFlashAdd(s.scoring.scale(wordPoints))
	}

	s.comboCue()
	s.flushCombo()
	s.stats.ObserveScore(s.scoring.score)
}

// damageEntity applies one letter to one entity and resolves the session
// side effects: letter credit, knock-back, completion, powerup capture.
func (s *Session) damageEntity(w *Entity, letter byte) {
	out := w.Damage(letter, s.visible)
	if out.Advanced {
		s.hitLetter = true
		s.scoring.letterHit()
		s.stats.LetterDestroyed(letter)

		if !s.frozen {
			w.Knock(s.knockAmount(w))
			if s.sweepFx {
				for _, other := range s.words {
					other.Knock(s.knockAmount(other))
				}
			}
		}
	}
	if out.Completed {
		s.removeWord(w)
		s.scoring.wordComplete()
		s.destroyedWord = true
		s.stats.WordDestroyed(w.Word[0])

		if w.Kind != KindPlain {
			s.powerup = w
			s.footer = newFooterWord(w.Word)
			s.stats.PowerupDestroyed()
		}
	}
}

// knockAmount grows with the streak and the active punch multiplier.
func (s *Session) knockAmount(w *Entity) float64 {
	power := s.scoring.streak/streakBonusMin + 1
	return float64(power) * w.Speed(s.fallSpeed()) * knockScale * float64(s.punchMult)
}

func (s *Session) removeWord(w *Entity) {
	for i, other := range s.words {
		if other == w {
			s.words = append(s.words[:i], s.words[i+1:]...)
			return
		}
	}
}

func (s *Session) flushStreak() {
	streak, bonus := s.scoring.flushStreak()
	s.stats.ObserveStreak(streak)
	if bonus > 0 {
		s.pointFlashAdd(bonus)
	}
}

func (s *Session) flushCombo() {
	combo, bonus := s.scoring.flushCombo()
	s.stats.ObserveCombo(combo)
	if bonus > 0 {
		s.pointFlashAdd(bonus)
	}
}

// streakCue fires a rising cue every five hits past the bonus threshold.
func (s *Session) streakCue() {
	streak := s.scoring.streak
	if streak >= streakBonusMin && streak%5 == 0 {
		s.cues.PlayStreakTier((streak - streakBonusMin) / 5)
	}
}

func (s *Session) comboCue() {
	if s.scoring.combo > 1 {
		s.cues.PlayComboTier(s.scoring.combo - 2)
	}
}

// RevealDown handles the reveal key being pressed: all words show their full
// text, the field speeds up, and the streak flushes. Ignored while the
// reveal powerup already keeps the field visible.
func (s *Session) RevealDown() {
	if s.paused || s.over || s.revealFx || s.manualReveal {
		return
	}
	s.manualReveal = true
	s.visible = true
	for _, w := range s.words {
		w.Reveal()
	}
	s.cues.Play(CueReveal)
	s.flushStreak()
	s.stats.RevealUsed()
	if s.footer != nil {
		s.footer.reset()
	}
}

// RevealUp restores normal speed and fully hides every word, resetting match
// progress. The price of peeking.
func (s *Session) RevealUp() {
	if s.revealFx || !s.manualReveal {
		return
	}
	s.manualReveal = false
	s.visible = false
	for _, w := range s.words {
		w.Hide()
	}
}

// TogglePause flips the pause state. Paused sessions neither move nor tick
// timers.
func (s *Session) TogglePause() {
	if s.over {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.cues.Play(CuePause)
	} else {
		s.cues.Play(CueResume)
	}
}
