// Package adminauth serves admin registration, login and the current admin profile.
package adminauth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/auth"
	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const (
	// Path is the auth route group.
	Path = handler.AdminPrefix + "/auth"

	tokenType = "Bearer"
)

// RegisterRequest is the registration body.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255" label:"Name"`
	Email    string `json:"email" validate:"required,email,max=255" label:"Email"`
	Password string `json:"password" validate:"required,min=8" label:"Password"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Service is the admin auth handler service.
// AuthService is required, Limiter is optional.
type Service struct {
	handler.Service
	AuthService *auth.Service
	Limiter     fiber.Handler
}

// Init registers the auth routes. Only /me requires a token.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil || s.AuthService == nil {
		return handler.ErrNilACD
	}

	limit := s.Limiter
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}

	app.Post(Path+"/register", limit, s.Register)
	app.Post(Path+"/login", limit, s.Login)
	app.Get(Path+"/me", guard, s.Me)

	return nil
}

// Register creates an admin account and returns its token.
func (s *Service) Register(c *fiber.Ctx) error {
	req := new(RegisterRequest)
	if err := handler.Bind(c, req); err != nil {
		return err
	}

	sess, err := s.AuthService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return handler.Created(c, tokenResponse(sess))
}

// Login checks the credentials and returns a token.
func (s *Service) Login(c *fiber.Ctx) error {
	req := new(LoginRequest)
	if err := handler.Bind(c, req); err != nil {
		return err
	}

	sess, err := s.AuthService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(tokenResponse(sess))
}

// Me returns the admin the bearer token belongs to.
func (s *Service) Me(c *fiber.Ctx) error {
	admin, err := s.AuthService.Me(c.UserContext(), auth.Email(c))
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(admin)
}

func tokenResponse(sess *auth.Session) TokenResponse {
	return TokenResponse{
		Token: sess.Token,
		Type:  tokenType,
		ID:    sess.Admin.ID,
		Name:  sess.Admin.Name,
		Email: sess.Admin.Email,
	}
}
