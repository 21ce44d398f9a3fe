package auth

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/opsboard/opsboard/pkg/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity facts embedded in a session token.
// They are sufficient for authorization without a database round-trip.
type Claims struct {
	jwt.RegisteredClaims

	UserId         string      `json:"userId"`
	Email          string      `json:"email"`
	OrganizationId string      `json:"organizationId"`
	Role           domain.Role `json:"role"`
}

// IssueToken signs a session token for u, expiring after the configured TTL.
func (s *Service) IssueToken(u domain.User) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		UserId:         u.Id,
		Email:          u.Email,
		OrganizationId: u.OrganizationId,
		Role:           u.Role,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// VerifyToken parses and verifies token, returning the embedded claims.
//
// Missing, malformed, unsigned and expired tokens all normalize to
// ErrInvalidToken so the access gate can answer them uniformly.
func (s *Service) VerifyToken(token string) (Claims, error) {
	claims := Claims{}
	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
