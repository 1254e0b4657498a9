package username

import "strings"

// alphabets for pronounceable strings
const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

// Readable returns a pronounceable string of length/2 consonant-vowel
// pairs. Odd lengths round down.
func Readable(length int) string {
	var b strings.Builder
	b.Grow(length)
	for range length / 2 {
		b.WriteByte(consonants[randIntn(len(consonants))])
		b.WriteByte(vowels[randIntn(len(vowels))])
	}
	return b.String()
}

// Handle returns a two-part username in the style of mailcow's own
// generated addresses, like "bima.rodatu". Each part is a readable
// string of random length.
func Handle() string {
	return Readable(3+randIntn(7)) + "." + Readable(3+randIntn(7))
}
