package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters allowed in a list or
// todo title, counted in Unicode code points after trimming.
const MaxTitleLength = 100

// FieldTitle is the ValidationError field key for titles.
const FieldTitle = "title"

// TitleMessages holds the user-facing messages for the two ways a title can
// be out of bounds. Lists and todos word them differently.
type TitleMessages struct {
	Required string
	TooLong  string
}

// NormalizeTitle trims surrounding whitespace from a raw title.
func NormalizeTitle(raw string) string {
	return strings.TrimSpace(raw)
}

// ValidateTitle trims raw and checks the 1..MaxTitleLength bound. It returns
// the trimmed title and a *ValidationError keyed by FieldTitle on failure.
func ValidateTitle(raw string, msgs TitleMessages) (string, error) {
	title := NormalizeTitle(raw)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		return title, &ValidationError{Fields: map[string]string{FieldTitle: msgs.Required}}
	case n > MaxTitleLength:
		return title, &ValidationError{Fields: map[string]string{FieldTitle: msgs.TooLong}}
	}
	return title, nil
}
