package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/ports"
)

// Context keys set by User when a valid token accompanies the request.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// User extracts and validates the bearer token, resolves the user it names,
// and injects the identity into the request context.
//
// A request without an Authorization header (or without a bearer scheme)
// passes through unauthenticated; handlers that require identity reject it
// themselves. A header that is present but carries an empty, malformed,
// expired, or unresolvable token fails the request immediately.
func User(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}
			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				return domain.ErrTokenMissing
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrInvalidToken
			}

			id, _ := claims["id"].(string)
			if id == "" {
				return domain.ErrInvalidToken
			}

			// The token may outlive its user; a dangling id reads the same
			// as a bad signature.
			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUsername, user.Username)

			return next(c)
		}
	}
}
