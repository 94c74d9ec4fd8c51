package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
)

// LocalsEmail is the fiber.Locals key holding the authenticated admin email.
const LocalsEmail = "email"

// TokenParser recovers the subject of a valid token.
type TokenParser interface {
	Parse(token string) (string, error)
}

// AdminLookup loads the admin a token subject names. *Service implements it.
type AdminLookup interface {
	Me(ctx context.Context, email string) (*models.AdminUser, error)
}

// Middleware rejects requests without a valid bearer token with ErrInvalidToken.
// The token subject must still name an admin account, an inactive one is
// rejected with ErrAccountDeactivated. The email is stored in fiber.Locals under LocalsEmail.
func Middleware(parser TokenParser, admins AdminLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return ErrInvalidToken
		}

		email, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("rejected admin token")

			return ErrInvalidToken
		}

		admin, err := admins.Me(c.UserContext(), email)
		if err != nil {
			return err
		}

		if !admin.IsActive {
			log.Debug().Uint64("admin_id", admin.ID).Str("path", c.Path()).Msg("rejected deactivated admin")

			return ErrAccountDeactivated
		}

		c.Locals(LocalsEmail, admin.Email)

		return c.Next()
	}
}

// Email returns the authenticated admin email, "" outside protected routes.
func Email(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalsEmail).(string)

	return email
}
