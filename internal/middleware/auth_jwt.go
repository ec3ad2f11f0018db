package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ViewerIdentity resolves the caller's e-mail from a bearer token issued by
// the identity provider and stores it in c.Locals("user_email"). Requests
// without an Authorization header pass through anonymously; the API itself
// takes user identifiers from route parameters.
func ViewerIdentity() fiber.Handler {
	secret := os.Getenv("JWT_SECRET")

	type viewerClaims struct {
		Email                string `json:"email,omitempty"`
		jwt.RegisteredClaims        // Subject carries the e-mail for some issuers
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing JWT_SECRET")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims viewerClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		email := claims.Email
		if email == "" {
			email = claims.Subject
		}
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing email/sub")
		}

		c.Locals("user_email", email)
		return c.Next()
	}
}
