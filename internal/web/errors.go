package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/metropolitan-website/metropolitan-backend/internal/auth"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
	"github.com/metropolitan-website/metropolitan-backend/internal/validation"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

type errorMapping struct {
	err    error
	status int
	body   handler.ErrorResponse
}

var errorMappings = []errorMapping{ //nolint:gochecknoglobals
	{
		err:    auth.ErrDuplicateEmail,
		status: fiber.StatusBadRequest,
		body:   handler.ErrorResponse{Message: "Email is already registered", Code: "DUPLICATE_EMAIL"},
	},
	{
		err:    auth.ErrRegistrationClosed,
		status: fiber.StatusBadRequest,
		body:   handler.ErrorResponse{Message: "Registration is closed", Code: "REGISTRATION_CLOSED"},
	},
	{
		err:    auth.ErrInvalidCredentials,
		status: fiber.StatusUnauthorized,
		body:   handler.ErrorResponse{Message: "Invalid email or password", Code: "INVALID_CREDENTIALS"},
	},
	{
		err:    auth.ErrAccountDeactivated,
		status: fiber.StatusUnauthorized,
		body:   handler.ErrorResponse{Message: "Account is deactivated", Code: "ACCOUNT_DEACTIVATED"},
	},
	{
		err:    auth.ErrInvalidToken,
		status: fiber.StatusUnauthorized,
		body:   handler.ErrorResponse{Message: "Unauthorized", Code: "UNAUTHORIZED"},
	},
	{
		err:    store.ErrNotFound,
		status: fiber.StatusNotFound,
		body:   handler.ErrorResponse{Message: "Resource not found"},
	},
}

// ErrorHandler maps handler errors to a status code and a JSON body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verr *validation.Error
		ferr *fiber.Error
	)

	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(m.body)
		}
	}

	if errors.As(err, &ferr) {
		return c.Status(ferr.Code).JSON(handler.ErrorResponse{Message: ferr.Message})
	}

	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(handler.ErrorResponse{Message: "Internal server error"})
}
