package domain

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first character of word and leaves the rest
// untouched. An empty word is rejected.
func Capitalize(word string) (string, error) {
	if word == "" {
		return "", Invalid("word", "cannot capitalize an empty string")
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:], nil
}

// FormatNumber renders a plain number such as an interest rate with the
// shortest representation that round-trips, so 5 prints as "5" and 1.5 as
// "1.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
