// Package authn is the access control gate in front of the API.
//
// Registration and login are public; every other route demands a valid
// bearer token, and organization routes additionally demand the admin
// role. Verified claims are stashed on the request context for handlers.
package authn

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/auth"
)

const claimsKey = "authn.claims"

// RequireToken verifies the Authorization header and rejects the request
// with 401 before the handler runs when it is absent or unverifiable.
func RequireToken(credentials *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return apierr.Unauthorized("Authorization token required")
			}

			claims, err := credentials.VerifyToken(token)
			if err != nil {
				return apierr.Unauthorized("Invalid or expired token", apierr.WithError(err))
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin rejects callers whose role claim is not admin.
// It runs after RequireToken on the same route.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || claims.Role != domain.Admin {
				return apierr.Unauthorized("Admin access required")
			}
			return next(c)
		}
	}
}

// ClaimsFrom recovers the claims RequireToken verified for this request.
func ClaimsFrom(c echo.Context) (auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(auth.Claims)
	return claims, ok
}
