package auth

import "errors"

var (
	// ErrRegistrationClosed is returned when the admin ceiling is reached.
	ErrRegistrationClosed = errors.New("admin registration is closed")

	// ErrDuplicateEmail is returned when an admin with the email already exists.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDeactivated is returned when the password matched but the account is inactive.
	ErrAccountDeactivated = errors.New("account is deactivated")

	// ErrInvalidToken is returned for a missing, malformed, tampered or expired token,
	// and for a token whose admin no longer exists.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrEmptySecret is returned when a token issuer is created without a signing secret.
	ErrEmptySecret = errors.New("token secret is empty")
)
