package game

// footerWord tracks the retype progress of a captured powerup. The word must
// be typed a second time in the footer before the powerup fires; footer
// letters earn no points.
type footerWord struct {
	word   string
	target int
}

func newFooterWord(word string) *footerWord {
	return &footerWord{word: word}
}

// damage offers a letter; only the letter at the match index advances.
func (f *footerWord) damage(letter byte) bool {
	if f.done() || f.word[f.target] != letter {
		return false
	}
	f.target++
	return true
}

func (f *footerWord) done() bool { return f.target == len(f.word) }

// reset clears retype progress. Triggered by a manual reveal.
func (f *footerWord) reset() { f.target = 0 }

// display shows typed letters as damage markers and the remainder plainly.
func (f *footerWord) display() string {
	b := []byte(f.word)
	for i := 0; i < f.target; i++ {
		b[i] = damagedMark
	}
	return string(b)
}
