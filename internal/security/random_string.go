package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Alphabet used for generated bootstrap passwords. No ambiguous glyphs
// because the value may be read aloud or retyped from a log line.
const PasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const generatedPasswordLength = 16

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// GeneratePassword returns a one-time password for the bootstrap
// administrator account when none is configured.
func GeneratePassword() (string, error) {
	return RandomString(generatedPasswordLength, PasswordAlphabet)
}
