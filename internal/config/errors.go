package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormengine names an unsupported driver.
	ErrUnknownGormEngine = errors.New("config db.gormengine must be one of mysql, postgres, sqlite")

	// ErrJWTSecretTooShort error if the token signing secret is shorter than 32 bytes outside dev mode.
	ErrJWTSecretTooShort = errors.New("config auth.jwtsecret must be at least 32 bytes")

	// ErrInvalidMaxLimit error if config pagination.maxlimit is negative or below a default limit.
	ErrInvalidMaxLimit = errors.New("config pagination.maxlimit must not be negative or below the default limits")
)
