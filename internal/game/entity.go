// Package game implements the falling-words session simulation.
package game

import (
	"math/rand"
	"time"
)

// PowerupKind discriminates special words from plain ones.
type PowerupKind int

const (
	KindPlain PowerupKind = iota
	KindBomb
	KindClear
	KindScore
	KindFreeze
	KindReveal
	KindPunch
	KindSweep
)

// String returns the kind name used for cues and flavor-word lookup.
func (k PowerupKind) String() string {
	switch k {
	case KindBomb:
		return "bomb"
	case KindClear:
		return "clear"
	case KindScore:
		return "score"
	case KindFreeze:
		return "freeze"
	case KindReveal:
		return "reveal"
	case KindPunch:
		return "punch"
	case KindSweep:
		return "sweep"
	default:
		return "word"
	}
}

const (
	hiddenMark  = '-'
	damagedMark = '*'
	maxSeed     = 50
)

// Entity is a falling word. Kind selects what happens when it completes.
type Entity struct {
	Word string
	Kind PowerupKind
	X    int
	Y    float64
	Seed int

	display []byte
	target  int
}

// newEntity spawns a word above the field at a random column that keeps the
// rendered text inside the field. Higher seeds fall slower.
func newEntity(word string, fieldWidth int, visible bool, rnd *rand.Rand) *Entity {
	span := fieldWidth - len(word)
	if span < 0 {
		span = 0
	}
	e := &Entity{
		Word: word,
		X:    rnd.Intn(span + 1),
		Y:    -1,
		Seed: rnd.Intn(maxSeed + 1),
	}
	if visible {
		e.display = []byte(word)
	} else {
		e.display = hiddenText(len(word))
	}
	return e
}

func hiddenText(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = hiddenMark
	}
	return b
}

// Display returns the text the player currently sees.
func (e *Entity) Display() string { return string(e.display) }

// Target returns the index of the next letter to match.
func (e *Entity) Target() int { return e.target }

// Done reports whether every letter has been matched.
func (e *Entity) Done() bool { return e.target == len(e.Word) }

// Speed is the per-entity fall speed in rows per second. Seed 0 falls at the
// session speed, seed 50 at half of it.
func (e *Entity) Speed(sessionSpeed float64) float64 {
	return sessionSpeed * float64(100-e.Seed) / 100
}

// Move advances the entity down the field.
func (e *Entity) Move(sessionSpeed float64, dt time.Duration) {
	e.Y += e.Speed(sessionSpeed) * dt.Seconds()
}

// Knock displaces the entity upward.
func (e *Entity) Knock(amount float64) {
	e.Y -= amount
}

// PastDeadline reports whether the entity crossed the footer boundary.
func (e *Entity) PastDeadline(fieldHeight int) bool {
	return e.Y > float64(fieldHeight)
}

// AboveField reports whether the entity is still above the visible area.
func (e *Entity) AboveField() bool {
	return e.Y < -1
}

// DamageOutcome reports the result of offering one letter to an entity.
type DamageOutcome struct {
	Advanced  bool
	Completed bool
}

// Damage offers a letter to the entity. Only the letter at the match index
// has any effect; everything else leaves the entity untouched. The visible
// flag selects the display encoding: hidden mode reveals the matched prefix,
// visible mode obscures it with damage markers.
func (e *Entity) Damage(letter byte, visible bool) DamageOutcome {
	if e.Done() || e.Word[e.target] != letter {
		return DamageOutcome{}
	}
	e.target++
	if visible {
		for i := 0; i < e.target; i++ {
			e.display[i] = damagedMark
		}
		copy(e.display[e.target:], e.Word[e.target:])
	} else {
		copy(e.display, e.Word[:e.target])
		for i := e.target; i < len(e.display); i++ {
			e.display[i] = hiddenMark
		}
	}
	return DamageOutcome{Advanced: true, Completed: e.Done()}
}

// Reveal shows the full word without touching match progress.
func (e *Entity) Reveal() {
	e.display = []byte(e.Word)
}

// Hide obscures the full word and resets match progress.
func (e *Entity) Hide() {
	e.display = hiddenText(len(e.Word))
	e.target = 0
}

// PartiallyReveal converts the hidden encoding to the visible one: hidden
// letters become readable and the matched prefix turns into damage markers.
// Match progress is preserved.
func (e *Entity) PartiallyReveal() {
	for i, b := range e.display {
		if b == hiddenMark {
			e.display[i] = e.Word[i]
		} else {
			e.display[i] = damagedMark
		}
	}
}

// PartiallyHide converts the visible encoding back to the hidden one: damage
// markers become readable matched letters and the rest is obscured. Match
// progress is preserved.
func (e *Entity) PartiallyHide() {
	for i, b := range e.display {
		if b == damagedMark {
			e.display[i] = e.Word[i]
		} else {
			e.display[i] = hiddenMark
		}
	}
}
