package engine

import "strings"

// Latin-1 Supplement letter range treated as word characters, in
// addition to ASCII letters.
const (
	latin1Lo = 'À' // À
	latin1Hi = 'ÿ' // ÿ
)

// Normalize replaces every character that is not an ASCII or Latin-1
// letter with a single space. Characters map 1:1, so the rune count of
// the output equals the rune count of the input. Case is untouched;
// case-insensitive comparison happens in the keyword set.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= latin1Lo && r <= latin1Hi:
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
