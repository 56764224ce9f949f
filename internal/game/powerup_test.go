package game

import (
	"testing"
	"time"
)

func TestBombDestroysHalfAndPaysBonus(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "ant", "bat", "cow", "dog")

	s.activate(KindBomb)
	if len(s.words) != 2 {
		t.Fatalf("bomb must remove round(4*0.5)=2 words, %d left", len(s.words))
	}
	// Five word values per destroyed word.
	if s.scoring.score != 2*wordPoints*bombAwardFactor {
		t.Fatalf("score %d, want %d", s.scoring.score, 2*wordPoints*bombAwardFactor)
	}
	if s.alert != alertMax {
		t.Fatalf("activation must raise the alert")
	}
	if s.powerup != nil {
		t.Fatalf("activation must clear the captured powerup")
	}
}

func TestBombOnEmptyField(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	s.words = s.words[:0]
	s.activate(KindBomb)
	if s.scoring.score != 0 || len(s.words) != 0 {
		t.Fatalf("bomb on empty field must do nothing")
	}
}

func TestClearRemovesAllWithoutPoints(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "ant", "bat", "cow")
	s.activate(KindClear)
	if len(s.words) != 0 {
		t.Fatalf("clear must empty the field")
	}
	if s.scoring.score != 0 {
		t.Fatalf("clear must not award points, got %d", s.scoring.score)
	}
}

func TestScorePowerupMultiplies(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	s.scoring.score = 101
	s.activate(KindScore)
	if s.scoring.score != 152 {
		t.Fatalf("score %d, want round(101*1.5)=152", s.scoring.score)
	}
}

func TestFreezeExpires(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.activate(KindFreeze)
	if !s.frozen {
		t.Fatalf("freeze must engage")
	}
	s.Advance(powerupDuration + time.Second)
	if s.frozen {
		t.Fatalf("freeze must expire on its own timer")
	}
}

func TestFreezeClearsWhenFieldEmpties(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	s.words = s.words[:0]
	s.activate(KindFreeze)
	s.Advance(16 * time.Millisecond)
	if s.frozen {
		t.Fatalf("freeze must clear when no words remain")
	}
}

func TestRevealPowerupTogglePreservesProgress(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	es := plant(s, "cat")
	s.Type('c')

	s.activate(KindReveal)
	if es[0].Display() != "*at" {
		t.Fatalf("reveal mode display %q, want *at", es[0].Display())
	}
	s.activate(KindReveal)
	if es[0].Display() != "c--" {
		t.Fatalf("toggling back must restore the hidden encoding, got %q", es[0].Display())
	}
	if es[0].Target() != 1 {
		t.Fatalf("toggling must never lose progress")
	}
}

func TestPunchPrecedenceOverSweep(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	if s.punchMultiplier() != 1 {
		t.Fatalf("idle multiplier %d, want 1", s.punchMultiplier())
	}
	s.sweepFx = true
	if s.punchMultiplier() != punchMultiplierLow {
		t.Fatalf("sweep multiplier %d, want %d", s.punchMultiplier(), punchMultiplierLow)
	}
	s.punchFx = true
	if s.punchMultiplier() != punchMultiplierHigh {
		t.Fatalf("punch must take precedence, got %d", s.punchMultiplier())
	}
}

func TestPunchExpires(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.activate(KindPunch)
	if !s.punchFx {
		t.Fatalf("punch must engage")
	}
	s.Advance(powerupDuration + time.Second)
	if s.punchFx {
		t.Fatalf("punch must expire on its own timer")
	}
}

func TestGateSuspendedWhilePowerupInFlight(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	if !s.gateOpen() {
		t.Fatalf("gate should accumulate with only plain words")
	}

	// Onscreen powerup word.
	e := newEntity("bomb", s.cfg.FieldWidth, false, s.rnd)
	e.Kind = KindBomb
	s.words = append(s.words, e)
	if s.gateOpen() {
		t.Fatalf("gate must suspend while a powerup word is onscreen")
	}
	s.words = s.words[:len(s.words)-1]

	// Captured powerup awaiting retype.
	s.powerup = e
	if s.gateOpen() {
		t.Fatalf("gate must suspend while a powerup is captured")
	}
	s.powerup = nil

	s.sweepFx = true
	if s.gateOpen() {
		t.Fatalf("gate must suspend while sweep is active")
	}
}

func TestGateFiresAndRedraws(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.gateThreshold = 100 * time.Millisecond

	s.Advance(150 * time.Millisecond)
	if len(s.words) != 2 {
		t.Fatalf("expected a powerup spawn, have %d words", len(s.words))
	}
	if s.words[1].Kind == KindPlain {
		t.Fatalf("gate must spawn a powerup word")
	}
	if s.gate.total() != 0 {
		t.Fatalf("gate accumulator must reset after firing")
	}
	if s.gateThreshold < minPowerupGate || s.gateThreshold > maxGateFor(s.bgLevel) {
		t.Fatalf("redrawn threshold %v out of range", s.gateThreshold)
	}
}

func TestPowerupCaptureAndFooterRetype(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s)
	e := newEntity("nuke", s.cfg.FieldWidth, false, s.rnd)
	e.Kind = KindBomb
	e.Y = 5
	s.words = append(s.words, e)

	for _, letter := range []byte("nuke") {
		s.Type(letter)
	}
	if s.powerup != e {
		t.Fatalf("completed powerup word must be captured")
	}
	if s.footer == nil {
		t.Fatalf("capture must open the footer retype")
	}
	if len(s.words) != 0 {
		t.Fatalf("captured powerup must leave the field")
	}
	score := s.scoring.score

	for _, letter := range []byte("nuke") {
		s.Type(letter)
	}
	if s.powerup != nil || s.footer != nil {
		t.Fatalf("retype completion must activate and clear the powerup")
	}
	// Footer letters earn no letter points; the empty-field bomb pays nothing.
	if s.scoring.score != score {
		t.Fatalf("score changed from %d to %d during retype", score, s.scoring.score)
	}
}

func TestFooterResetOnManualReveal(t *testing.T) {
	s := newTestSession(t, TierEasy, "cat")
	plant(s, "cat")
	s.powerup = &Entity{Word: "bomb", Kind: KindBomb}
	s.footer = newFooterWord("bomb")
	s.footer.damage('b')
	s.footer.damage('o')

	s.RevealDown()
	if s.footer.target != 0 {
		t.Fatalf("manual reveal must reset footer progress")
	}
	if s.footer.display() != "bomb" {
		t.Fatalf("footer display %q", s.footer.display())
	}
}

func TestFooterDisplayEncoding(t *testing.T) {
	f := newFooterWord("bomb")
	f.damage('b')
	f.damage('o')
	if f.display() != "**mb" {
		t.Fatalf("footer display %q, want **mb", f.display())
	}
	if f.damage('x') {
		t.Fatalf("footer must reject out-of-order letters")
	}
}

func TestPowerupFlavorWordsAreUsable(t *testing.T) {
	for _, kind := range powerupKinds {
		words := powerupWords[kind]
		if len(words) == 0 {
			t.Fatalf("kind %s has no flavor words", kind)
		}
		for _, w := range words {
			for i := 0; i < len(w); i++ {
				if w[i] < 'a' || w[i] > 'z' {
					t.Fatalf("flavor word %q is not typeable", w)
				}
			}
		}
	}
}
