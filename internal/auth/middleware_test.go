package auth_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metropolitan-website/metropolitan-backend/internal/auth"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
)

var errLookup = errors.New("lookup failed")

// mapLookup resolves admins from a map, unknown emails behave like Service.Me.
type mapLookup map[string]*models.AdminUser

func (m mapLookup) Me(_ context.Context, email string) (*models.AdminUser, error) {
	if email == "broken@metropolitan.test" {
		return nil, errLookup
	}

	admin, ok := m[email]
	if !ok {
		return nil, auth.ErrInvalidToken
	}

	return admin, nil
}

func TestMiddleware(t *testing.T) {
	issuer, err := auth.NewJWTIssuer(testSecret, "metropolitan-test", time.Hour)
	require.NoError(t, err)

	issue := func(email string) string {
		token, err := issuer.Issue(email)
		require.NoError(t, err)

		return token
	}

	token := issue("a@metropolitan.test")

	admins := mapLookup{
		"a@metropolitan.test":   {ID: 1, Email: "a@metropolitan.test", IsActive: true},
		"off@metropolitan.test": {ID: 2, Email: "off@metropolitan.test", IsActive: false},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			switch {
			case errors.Is(err, auth.ErrInvalidToken):
				return c.Status(fiber.StatusUnauthorized).SendString("invalid")
			case errors.Is(err, auth.ErrAccountDeactivated):
				return c.Status(fiber.StatusUnauthorized).SendString("deactivated")
			default:
				return c.SendStatus(fiber.StatusInternalServerError)
			}
		},
	})
	app.Get("/me", auth.Middleware(issuer, admins), func(c *fiber.Ctx) error {
		return c.SendString(auth.Email(c))
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "valid", header: "Bearer " + token, status: fiber.StatusOK, body: "a@metropolitan.test"},
		{name: "lower case scheme", header: "bearer " + token, status: fiber.StatusOK, body: "a@metropolitan.test"},
		{name: "missing", header: "", status: fiber.StatusUnauthorized, body: "invalid"},
		{name: "basic", header: "Basic YWRtaW46YWRtaW4=", status: fiber.StatusUnauthorized, body: "invalid"},
		{name: "bearer only", header: "Bearer ", status: fiber.StatusUnauthorized, body: "invalid"},
		{name: "bad token", header: "Bearer abc.def.ghi", status: fiber.StatusUnauthorized, body: "invalid"},
		{
			name:   "unknown admin",
			header: "Bearer " + issue("gone@metropolitan.test"),
			status: fiber.StatusUnauthorized,
			body:   "invalid",
		},
		{
			name:   "deactivated admin",
			header: "Bearer " + issue("off@metropolitan.test"),
			status: fiber.StatusUnauthorized,
			body:   "deactivated",
		},
		{
			name:   "lookup error",
			header: "Bearer " + issue("broken@metropolitan.test"),
			status: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.body != "" {
				b, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(b))
			}
		})
	}
}

func TestMiddlewareWithService(t *testing.T) {
	svc, issuer, conn := newService(t)

	sess, err := svc.Register(context.Background(), "Admin", "admin@metropolitan.test", "correct horse")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrAccountDeactivated) {
				return c.SendStatus(fiber.StatusUnauthorized)
			}

			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/me", auth.Middleware(issuer, svc), func(c *fiber.Ctx) error {
		return c.SendString(auth.Email(c))
	})

	status := func() int {
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+sess.Token)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, status())

	require.NoError(t, conn.Model(&models.AdminUser{}).Where("id = ?", sess.Admin.ID).
		Update("is_active", false).Error)
	assert.Equal(t, fiber.StatusUnauthorized, status(), "deactivated before token expiry")

	require.NoError(t, conn.Delete(&models.AdminUser{}, sess.Admin.ID).Error)
	assert.Equal(t, fiber.StatusUnauthorized, status(), "deleted before token expiry")
}
