// Package auth provides admin registration, login and bearer token handling.
//
// # Accounts
//
// At most MaxAdmins admin accounts can be registered. The ceiling is checked
// before the insert and is not atomic with it, two concurrent registrations
// racing for the last slot may both succeed. Email uniqueness is enforced by
// a unique index, so a racing duplicate still fails with ErrDuplicateEmail.
//
// Passwords are hashed with Argon2id and never logged.
//
// # Login
//
// An unknown email and a wrong password both fail with ErrInvalidCredentials,
// and both pay for one Argon2id comparison.
// The active flag is only checked after the password matched. The last login
// time is written before the token is issued. A failed write is logged and
// the login still succeeds.
//
// # Tokens
//
// Token creation is delegated to a TokenIssuer. JWTIssuer issues HS256 JWTs
// with the admin email as subject, and Middleware protects fiber routes by
// validating the Authorization bearer header. The account behind a valid
// token is loaded on every request, deleted or deactivated admins are
// rejected before their token expires.
//
// Example usage:
//
//	issuer, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
//	authService := auth.NewService(db, issuer)
//
//	admin := app.Group("/api/admin", auth.Middleware(issuer, authService))
package auth
