// Package wordlist provides word filtering helpers.
package wordlist

// Typeable reports whether a word consists only of the letters the session
// accepts as input.
func Typeable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
