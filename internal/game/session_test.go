package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
)

func newTestSession(t *testing.T, tier Tier, words ...string) *Session {
	t.Helper()
	s, err := NewSession(Config{
		Tier:        tier,
		FieldWidth:  40,
		FieldHeight: 24,
		Pools:       model.Pools{Common: words},
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	// Keep scheduled spawns out of the way unless a test wants them.
	s.spawn.stop()
	s.gateThreshold = time.Hour
	return s
}

// plant replaces the active set with freshly spawned entities.
func plant(s *Session, words ...string) []*Entity {
	s.words = s.words[:0]
	out := make([]*Entity, 0, len(words))
	for _, w := range words {
		e := newEntity(w, s.cfg.FieldWidth, s.visible, s.rnd)
		e.Y = 5
		s.words = append(s.words, e)
		out = append(out, e)
	}
	return out
}

func TestEmptyPoolIsFatal(t *testing.T) {
	_, err := NewSession(Config{
		Tier:        TierEasy,
		FieldWidth:  40,
		FieldHeight: 24,
	})
	if err == nil {
		t.Fatalf("expected error for empty word pool")
	}
}

func TestWordCompletionScore(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")

	for _, letter := range []byte("cat") {
		s.Type(letter)
	}
	// Three letter points plus the word bonus (5-1).
	if s.scoring.score != 7 {
		t.Fatalf("score %d, want 7", s.scoring.score)
	}
	if len(s.words) != 0 {
		t.Fatalf("completed word must leave the active set")
	}
	if s.scoring.combo != 0 {
		t.Fatalf("combo must be flushed after the keystroke, got %d", s.scoring.combo)
	}
}

func TestSharedKeystrokeAdvancesBothWordsOnce(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat", "car")

	s.Type('c')
	if es[0].Target() != 1 || es[1].Target() != 1 {
		t.Fatalf("both words must advance: %d, %d", es[0].Target(), es[1].Target())
	}
	if s.scoring.streak != 1 {
		t.Fatalf("streak %d, want exactly 1 per keystroke", s.scoring.streak)
	}
	if s.scoring.score != 2 {
		t.Fatalf("score %d, want one letter point per advanced word", s.scoring.score)
	}
}

func TestMissFlushesStreakWithBonus(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.scoring.streak = 10

	s.Type('x')
	if s.scoring.streak != 0 {
		t.Fatalf("miss must reset streak, got %d", s.scoring.streak)
	}
	// Penalty floors at zero, then the streak bonus of round(10*1) pays out.
	if s.scoring.score != 10 {
		t.Fatalf("score %d, want 10", s.scoring.score)
	}
}

func TestRepeatedMissesKeepScoreAtZero(t *testing.T) {
	s := newTestSession(t, TierHard, "cat")
	plant(s, "cat")
	for i := 0; i < 5; i++ {
		s.Type('x')
		if s.scoring.score != 0 {
			t.Fatalf("score must stay at 0, got %d", s.scoring.score)
		}
	}
}

func TestDeadlineEndsSessionWithoutScoring(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat", "dog")
	es[0].Y = 30

	s.Advance(16 * time.Millisecond)
	if !s.Over() {
		t.Fatalf("session must end when a word crosses the deadline")
	}
	if s.scoring.score != 0 {
		t.Fatalf("deadline eviction must not score, got %d", s.scoring.score)
	}
	if len(s.words) != 1 {
		t.Fatalf("evicted word must leave the active set, %d left", len(s.words))
	}
	if s.words[0].Display() != "dog" {
		t.Fatalf("remaining words must be revealed at game over, got %q", s.words[0].Display())
	}

	// The session stops updating.
	s.Type('d')
	if s.scoring.score != 0 {
		t.Fatalf("input after game over must be ignored")
	}
}

func TestPauseSuspendsEverything(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat")
	s.spawn.set(100 * time.Millisecond)

	s.TogglePause()
	before := es[0].Y
	s.Advance(time.Second)
	if es[0].Y != before {
		t.Fatalf("paused entities must not move")
	}
	if len(s.words) != 1 {
		t.Fatalf("paused session must not spawn")
	}
	s.Type('c')
	if es[0].Target() != 0 {
		t.Fatalf("paused session must ignore input")
	}

	s.TogglePause()
	s.Advance(time.Second)
	if es[0].Y == before {
		t.Fatalf("resumed entities must move again")
	}
}

func TestSpawnTimerAddsWords(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.spawn.set(100 * time.Millisecond)

	s.Advance(150 * time.Millisecond)
	if len(s.words) != 2 {
		t.Fatalf("expected a spawn, have %d words", len(s.words))
	}
	if !s.spawn.active() {
		t.Fatalf("spawn timer must re-arm")
	}
}

func TestFreezeBlocksMovementAndSpawning(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat")
	s.spawn.set(50 * time.Millisecond)
	s.frozen = true
	s.freezeLeft.set(time.Hour)

	before := es[0].Y
	s.Advance(time.Second)
	if es[0].Y != before {
		t.Fatalf("frozen entities must not move")
	}
	if len(s.words) != 1 {
		t.Fatalf("frozen session must not spawn")
	}
}

func TestManualRevealRoundTrip(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat")
	s.Type('c')
	streak := s.scoring.streak
	if streak != 1 {
		t.Fatalf("setup: streak %d", streak)
	}

	s.RevealDown()
	if es[0].Display() != "cat" {
		t.Fatalf("reveal must show the full word, got %q", es[0].Display())
	}
	if s.scoring.streak != 0 {
		t.Fatalf("manual reveal must flush the streak")
	}
	if s.fallSpeed() <= s.params.FallSpeed {
		t.Fatalf("manual reveal must speed the field up")
	}

	s.RevealUp()
	if es[0].Display() != "---" || es[0].Target() != 0 {
		t.Fatalf("hiding must reset progress: %q target=%d", es[0].Display(), es[0].Target())
	}
	if s.fallSpeed() != s.params.FallSpeed {
		t.Fatalf("releasing reveal must restore the fall speed")
	}
}

func TestManualRevealIgnoredDuringRevealPowerup(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.activate(KindReveal)

	s.RevealDown()
	if s.manualReveal {
		t.Fatalf("manual reveal must be ignored while the reveal powerup is active")
	}
}

func TestResizeClampsColumns(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat")
	es[0].X = 35
	s.Resize(10, 24)
	if es[0].X+len(es[0].Word) > 10 {
		t.Fatalf("resize must clamp entity columns, x=%d", es[0].X)
	}
}

type spyRecorder struct {
	games, words, letters, powerups, reveals, misses int
	maxStreak, maxCombo, maxScore                    int
}

func (r *spyRecorder) GameStarted()         { r.games++ }
func (r *spyRecorder) WordDestroyed(byte)   { r.words++ }
func (r *spyRecorder) LetterDestroyed(byte) { r.letters++ }
func (r *spyRecorder) PowerupDestroyed()    { r.powerups++ }
func (r *spyRecorder) RevealUsed()          { r.reveals++ }
func (r *spyRecorder) LetterMissed()        { r.misses++ }
func (r *spyRecorder) ObserveStreak(n int) {
	if n > r.maxStreak {
		r.maxStreak = n
	}
}
func (r *spyRecorder) ObserveCombo(n int) {
	if n > r.maxCombo {
		r.maxCombo = n
	}
}
func (r *spyRecorder) ObserveScore(n int) {
	if n > r.maxScore {
		r.maxScore = n
	}
}

func TestRecorderSeesScoredRun(t *testing.T) {
	spy := &spyRecorder{}
	s, err := NewSession(Config{
		Tier:        TierEasy,
		FieldWidth:  40,
		FieldHeight: 24,
		Pools:       model.Pools{Common: []string{"cat"}},
		Recorder:    spy,
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.spawn.stop()
	s.gateThreshold = time.Hour
	plant(s, "cat")
	for _, letter := range []byte("cat") {
		s.Type(letter)
	}
	s.Type('x')

	if spy.games != 1 || spy.words != 1 || spy.letters != 3 || spy.misses != 1 {
		t.Fatalf("unexpected recorder state: %+v", spy)
	}
	if spy.maxScore != 7 {
		t.Fatalf("recorder max score %d, want 7", spy.maxScore)
	}
}

func TestPracticeTierNeverRecords(t *testing.T) {
	spy := &spyRecorder{}
	s, err := NewSession(Config{
		Tier:        TierPractice,
		FieldWidth:  40,
		FieldHeight: 24,
		Pools:       model.Pools{Common: []string{"cat"}},
		Recorder:    spy,
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	plant(s, "cat")
	s.Type('c')
	s.Type('x')
	if *spy != (spyRecorder{}) {
		t.Fatalf("practice tier must not mutate statistics: %+v", spy)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	s := newTestSession(t, TierNormal, "cat")
	plant(s, "cat")
	s.Type('c')

	snap := s.Snapshot()
	if len(snap.Entities) != 1 {
		t.Fatalf("expected one entity view")
	}
	if snap.Entities[0].Text != "c--" {
		t.Fatalf("entity text %q", snap.Entities[0].Text)
	}
	if snap.Score != 2 || snap.Streak != 1 {
		t.Fatalf("snapshot score=%d streak=%d", snap.Score, snap.Streak)
	}
	if snap.Tier != TierNormal {
		t.Fatalf("snapshot tier %v", snap.Tier)
	}
}

func TestFirstPowerupGateWaitsFullCeiling(t *testing.T) {
	s, err := NewSession(Config{
		Tier:        TierEasy,
		FieldWidth:  40,
		FieldHeight: 24,
		Pools:       model.Pools{Common: []string{"cat"}},
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.gateThreshold != maxGateFor(s.bgLevel) {
		t.Fatalf("first gate threshold %v, want the full ceiling %v",
			s.gateThreshold, maxGateFor(s.bgLevel))
	}
}
