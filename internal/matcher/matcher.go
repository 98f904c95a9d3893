// Package matcher finds every case-insensitive occurrence of a subtext in a
// text, overlapping occurrences included.
package matcher

import "unicode"

// Matcher reports 1-based start positions of subtext occurrences. It has no
// state and is safe for concurrent use.
type Matcher struct{}

// New returns a Matcher.
func New() *Matcher { return &Matcher{} }

// FindPositions returns the 1-based character positions, in ascending order,
// at which subtext occurs in text. A nil argument yields a *NullArgumentError
// and an empty argument yields ErrNoInput. A valid search with no occurrences
// returns an empty slice and a nil error.
func (m *Matcher) FindPositions(text, subtext *string) ([]int, error) {
	if text == nil {
		return nil, &NullArgumentError{Name: "text"}
	}
	if subtext == nil {
		return nil, &NullArgumentError{Name: "subtext"}
	}
	if *text == "" || *subtext == "" {
		return nil, ErrNoInput
	}
	return scan([]rune(*text), []rune(*subtext)), nil
}

// scan walks text with a cursor into each string. After a full match the text
// cursor goes back to one past the match start so overlapping occurrences are
// found. A broken partial match only restarts the pattern; the text cursor
// stays where the mismatch happened, so an occurrence starting inside the
// abandoned attempt (e.g. "aab" in "aaab") is not reported.
// Worst case is O(len(text) * len(pattern)).
func scan(text, pattern []rune) []int {
	positions := make([]int, 0)
	textCursor, patternCursor := 0, 0

	for textCursor < len(text) {
		switch {
		case equalFold(text[textCursor], pattern[patternCursor]):
			textCursor++
			patternCursor++
			if patternCursor == len(pattern) {
				start := textCursor - len(pattern) + 1
				positions = append(positions, start)
				patternCursor = 0
				textCursor = start
			}
		case patternCursor > 0:
			patternCursor = 0
		default:
			textCursor++
		}
	}
	return positions
}

func equalFold(x, y rune) bool {
	return unicode.ToLower(x) == unicode.ToLower(y)
}
