package handler

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const maxPromptRunes = 500

var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrPromptTooLong = errors.New("prompt is too long")
)

// SanitizePrompt normalizes user text before it reaches the model: NFC form,
// control and format characters removed, whitespace collapsed.
func SanitizePrompt(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r), unicode.Is(unicode.Cf, r), r == utf8.RuneError:
			return -1
		}
		return r
	}, norm.NFC.String(raw))

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "", ErrEmptyPrompt
	}
	if utf8.RuneCountInString(cleaned) > maxPromptRunes {
		return "", ErrPromptTooLong
	}
	return cleaned, nil
}
