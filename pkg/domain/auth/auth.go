// Package auth is the credential service: it hashes and verifies
// passwords, and issues and verifies signed session tokens.
//
// The signing secret and token lifetime are injected at construction,
// so tests can run isolated with distinct secrets.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenExpiry = 24 * time.Hour

type Service struct {
	secret     []byte
	expiry     time.Duration
	bcryptCost int
	now        func() time.Time
}

type Option func(*Service) *Service

// WithBcryptCost overrides the hash cost factor.
// Tests lower it: bcrypt at production cost dominates test runtime.
func WithBcryptCost(cost int) Option {
	return func(s *Service) *Service {
		s.bcryptCost = cost
		return s
	}
}

// WithClock overrides the time source for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) *Service {
		s.now = now
		return s
	}
}

func New(secret string, expiry time.Duration, options ...Option) *Service {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	s := &Service{
		secret:     []byte(secret),
		expiry:     expiry,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, option := range options {
		s = option(s)
	}
	return s
}
