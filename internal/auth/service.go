package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
)

// MaxAdmins is the hard ceiling of registered admin accounts.
const MaxAdmins = 2

const (
	columnEmail     = "email"
	columnLastLogin = "last_login"
)

// unknownAdminPassword is hashed once and checked on logins for unknown emails,
// so they cost as much as a wrong password.
const unknownAdminPassword = "metropolitan-unknown-admin" //nolint:gosec

var (
	unknownAdminOnce sync.Once         //nolint:gochecknoglobals
	unknownAdmin     *models.AdminUser //nolint:gochecknoglobals
)

func unknownAdminUser() *models.AdminUser {
	unknownAdminOnce.Do(func() {
		hash, err := models.HashPassword(unknownAdminPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash unknown admin password")
		}

		unknownAdmin = &models.AdminUser{Password: hash}
	})

	return unknownAdmin
}

// TokenIssuer creates a signed credential bound to one claim.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	Admin *models.AdminUser
}

// Service provides admin authentication.
type Service struct {
	store  *store.Store[models.AdminUser]
	issuer TokenIssuer
	now    func() time.Time
	verify func(admin *models.AdminUser, password string) bool
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, issuer TokenIssuer) *Service {
	return &Service{
		store:  store.New[models.AdminUser](db),
		issuer: issuer,
		now:    func() time.Time { return time.Now().UTC() },
		verify: (*models.AdminUser).VerifyPassword,
	}
}

// Register creates an active admin account and returns a token for it.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Session, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	if count >= MaxAdmins {
		return nil, ErrRegistrationClosed
	}

	if _, err = s.store.FindBy(ctx, columnEmail, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminUser{
		Name:     name,
		Email:    email,
		Password: hash,
		IsActive: true,
	}

	if err = s.store.Insert(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}

		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Uint64("admin_id", admin.ID).Str("email", admin.Email).Msg("admin registered")

	return s.session(admin)
}

// Login checks the credentials, records the login time and returns a token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	admin, err := s.store.FindBy(ctx, columnEmail, email)
	if errors.Is(err, store.ErrNotFound) {
		s.verify(unknownAdminUser(), password)

		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	if !s.verify(admin, password) {
		return nil, ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, ErrAccountDeactivated
	}

	now := s.now()
	if err = s.store.UpdateColumn(ctx, admin.ID, columnLastLogin, now); err != nil {
		log.Warn().Err(err).Uint64("admin_id", admin.ID).Msg("failed to record last login")
	} else {
		admin.LastLogin = &now
	}

	return s.session(admin)
}

// Me returns the admin identified by a token subject.
func (s *Service) Me(ctx context.Context, email string) (*models.AdminUser, error) {
	admin, err := s.store.FindBy(ctx, columnEmail, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidToken
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return admin, nil
}

func (s *Service) session(admin *models.AdminUser) (*Session, error) {
	token, err := s.issuer.Issue(admin.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{Token: token, Admin: admin}, nil
}
