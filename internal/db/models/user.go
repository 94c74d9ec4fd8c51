package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AdminUser is an account allowed to manage the site content.
type AdminUser struct {
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name.
	Name string `gorm:"size:255;not null" json:"name"`
	// Email identifies the account and is the token subject.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Password is the Argon2id hash, never serialised.
	Password string `gorm:"size:255;not null" json:"-"`
	// IsActive gates login after the password check.
	IsActive bool `gorm:"not null;default:true" json:"isActive"`
	// LastLogin is set on every successful login.
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `gorm:"<-:create" json:"createdAt"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// VerifyPassword compares password against the stored hash in constant time.
func (u *AdminUser) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Err(err).Uint64("admin_id", u.ID).Msg("failed to verify password")

		return false
	}

	return match
}
