package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt truncates input at 72 bytes. Longer passwords are rejected by
// validation before they ever reach HashPassword.
const MaxPasswordLength = 72

const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// ValidPassword reports whether raw satisfies the acceptance policy:
// at least 8 characters with one lowercase, one uppercase, one digit and
// one symbol, and no whitespace anywhere.
func ValidPassword(raw string) bool {
	if len(raw) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range raw {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return false
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}

// HashPassword derives a one-way digest of raw.
func (s *Service) HashPassword(raw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether raw is the password behind digest.
// bcrypt's comparison does not leak more timing than the primitive itself.
func (s *Service) VerifyPassword(raw string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}
