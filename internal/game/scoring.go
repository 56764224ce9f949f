package game

import "math"

const (
	wordPoints    = 5
	letterPoints  = 1
	penaltyPoints = 3

	comboPoints    = 75
	streakBonusMin = 10

	baseLevelThreshold = 10
	levelThresholdStep = 150
)

// scoring tracks score, streak, combo, and the score-derived level for one
// session. All awards are scaled by the tier multiplier and rounded.
type scoring struct {
	multiplier int

	score  int
	streak int
	combo  int
	level  int
}

func newScoring(multiplier int) *scoring {
	return &scoring{multiplier: multiplier}
}

func (s *scoring) scale(points int) int {
	return int(math.Round(float64(points) * float64(s.multiplier)))
}

// letterHit awards the per-letter credit for one advanced entity.
func (s *scoring) letterHit() int {
	p := s.scale(letterPoints)
	s.score += p
	return p
}

// wordComplete awards the word bonus (total word value minus the per-letter
// credit already paid) and counts the word toward the combo.
func (s *scoring) wordComplete() int {
	s.combo++
	p := s.scale(wordPoints - letterPoints)
	s.score += p
	return p
}

// miss applies the scaled penalty, flooring the score at zero, and returns
// the amount actually deducted.
func (s *scoring) miss() int {
	p := s.scale(penaltyPoints)
	if p > s.score {
		p = s.score
	}
	s.score -= p
	return p
}

// add credits bonus points that were already scaled.
func (s *scoring) add(points int) {
	s.score += points
}

// flushStreak pays the streak bonus when the streak reached the threshold
// and resets the streak. It returns the pre-reset streak and the bonus paid.
func (s *scoring) flushStreak() (streak, bonus int) {
	streak = s.streak
	if streak >= streakBonusMin {
		bonus = int(math.Round(float64(streak) * float64(s.multiplier)))
		s.score += bonus
	}
	s.streak = 0
	return streak, bonus
}

// flushCombo pays the combo bonus when more than one word was chained and
// always resets the combo. It returns the pre-reset combo and the bonus.
func (s *scoring) flushCombo() (combo, bonus int) {
	combo = s.combo
	if combo > 1 {
		bonus = int(math.Round(float64(combo) * comboPoints * float64(s.multiplier)))
		s.score += bonus
	}
	s.combo = 0
	return combo, bonus
}

// levelThreshold is the score needed to move from the given level to the
// next. The threshold itself grows with the level.
func levelThreshold(level, multiplier int) int {
	m := 1 + 0.1*float64(level)*float64(multiplier)
	return int(math.Round(baseLevelThreshold + levelThresholdStep*float64(level)*m))
}

// levelStep evaluates the up/down thresholds once and applies at most one
// level change. Level 0 is a floor. Returns -1, 0, or +1.
func (s *scoring) levelStep() int {
	if s.score >= levelThreshold(s.level, s.multiplier) {
		s.level++
		return 1
	}
	if s.level > 0 && s.score < baseLevelThreshold+levelThresholdStep*(s.level-1) {
		s.level--
		return -1
	}
	return 0
}
