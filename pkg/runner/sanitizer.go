package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds one line of input symbols, in bytes.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "PUSHDOWN_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
	ErrControlChar   = errors.New("input contains a control character")
)

// ControlCharError names the first token carrying a non-whitespace control character.
type ControlCharError struct {
	Rune  rune
	Token string
}

func (e *ControlCharError) Error() string {
	return fmt.Sprintf("%v: %U in token %q", ErrControlChar, e.Rune, e.Token)
}

func (e *ControlCharError) Unwrap() error {
	return ErrControlChar
}

// SanitizeInput checks a line of input symbols before it reaches the engine.
// The line is returned unchanged or refused, never rewritten: a refused line
// gets an error here instead of a verdict on different symbols.
// Whitespace controls (tab, newline, carriage return...) separate tokens and are allowed.
func SanitizeInput(input string) (string, error) {
	if limit := MaxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	for _, token := range strings.Fields(input) {
		if i := strings.IndexFunc(token, unicode.IsControl); i >= 0 {
			r, _ := utf8.DecodeRuneInString(token[i:])
			return "", &ControlCharError{Rune: r, Token: token}
		}
	}
	return input, nil
}

// MaxInputSize returns the effective limit, honoring EnvMaxInputSize.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
