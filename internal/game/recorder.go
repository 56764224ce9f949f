package game

// Recorder receives gameplay statistics. The session calls it on every
// relevant event; practice-tier sessions are given a NopRecorder so they
// never touch persisted statistics.
type Recorder interface {
	GameStarted()
	WordDestroyed(initial byte)
	LetterDestroyed(letter byte)
	PowerupDestroyed()
	RevealUsed()
	LetterMissed()
	ObserveStreak(streak int)
	ObserveCombo(combo int)
	ObserveScore(score int)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) GameStarted() {}
func (NopRecorder) WordDestroyed(byte) {}
func (NopRecorder) LetterDestroyed(byte) {}
func (NopRecorder) PowerupDestroyed() {}
func (NopRecorder) RevealUsed() {}
func (NopRecorder) LetterMissed() {}
func (NopRecorder) ObserveStreak(int) {}
func (NopRecorder) ObserveCombo(int) {}
func (NopRecorder) ObserveScore(int) {}
