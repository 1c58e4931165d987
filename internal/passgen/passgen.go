// Package passgen generates random passwords from a configurable character
// set, sampled uniformly with crypto/rand.
package passgen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ErrEmptyCharset is returned when no character class is selected.
var ErrEmptyCharset = errors.New("at least one character type must be selected")

// Options control the length and character classes of generated passwords.
type Options struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions mirrors the generator defaults of the web UI.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Generate returns a random password of opts.Length characters drawn
// uniformly from the selected classes.
func Generate(opts Options) (string, error) {
	var charset string
	if opts.Lowercase {
		charset += lowercase
	}
	if opts.Uppercase {
		charset += uppercase
	}
	if opts.Digits {
		charset += digits
	}
	if opts.Symbols {
		charset += symbols
	}

	if charset == "" {
		return "", ErrEmptyCharset
	}

	password := make([]byte, opts.Length)
	max := big.NewInt(int64(len(charset)))
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = charset[n.Int64()]
	}

	return string(password), nil
}
