package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/auth"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/dbtest"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T) (*auth.Service, *auth.JWTIssuer, *gorm.DB) {
	t.Helper()

	issuer, err := auth.NewJWTIssuer(testSecret, "metropolitan-test", time.Hour)
	require.NoError(t, err)

	conn := dbtest.New(t)

	return auth.NewService(conn, issuer), issuer, conn
}

func TestRegisterCeiling(t *testing.T) {
	ctx := context.Background()
	s, issuer, _ := newService(t)

	a, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "password-a")
	require.NoError(t, err)
	assert.True(t, a.Admin.IsActive)

	sub, err := issuer.Parse(a.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@metropolitan.test", sub)

	_, err = s.Register(ctx, "Admin B", "b@metropolitan.test", "password-b")
	require.NoError(t, err)

	_, err = s.Register(ctx, "Admin C", "c@metropolitan.test", "password-c")
	require.ErrorIs(t, err, auth.ErrRegistrationClosed)

	// the ceiling wins over the duplicate check
	_, err = s.Register(ctx, "Admin A again", "a@metropolitan.test", "password-a")
	require.ErrorIs(t, err, auth.ErrRegistrationClosed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	_, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "password-a")
	require.NoError(t, err)

	_, err = s.Register(ctx, "Other", "a@metropolitan.test", "password-x")
	require.ErrorIs(t, err, auth.ErrDuplicateEmail)
}

func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	s, _, conn := newService(t)

	_, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "plain-secret")
	require.NoError(t, err)

	var stored models.AdminUser
	require.NoError(t, conn.First(&stored, "email = ?", "a@metropolitan.test").Error)
	assert.NotEqual(t, "plain-secret", stored.Password)
	assert.True(t, stored.VerifyPassword("plain-secret"))
	assert.Nil(t, stored.LastLogin)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, issuer, _ := newService(t)

	_, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "password-a")
	require.NoError(t, err)

	sess, err := s.Login(ctx, "a@metropolitan.test", "password-a")
	require.NoError(t, err)
	require.NotNil(t, sess.Admin.LastLogin)

	sub, err := issuer.Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@metropolitan.test", sub)

	me, err := s.Me(ctx, sub)
	require.NoError(t, err)
	require.NotNil(t, me.LastLogin)
	assert.Equal(t, "Admin A", me.Name)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	_, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "password-a")
	require.NoError(t, err)

	_, wrongPassword := s.Login(ctx, "a@metropolitan.test", "nope")
	_, unknownEmail := s.Login(ctx, "ghost@metropolitan.test", "password-a")

	require.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginDeactivated(t *testing.T) {
	ctx := context.Background()
	s, _, conn := newService(t)

	reg, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "password-a")
	require.NoError(t, err)
	require.NoError(t, conn.Model(&models.AdminUser{}).Where("id = ?", reg.Admin.ID).Update("is_active", false).Error)

	_, err = s.Login(ctx, "a@metropolitan.test", "password-a")
	require.ErrorIs(t, err, auth.ErrAccountDeactivated)

	// the active flag is only revealed to a caller knowing the password
	_, err = s.Login(ctx, "a@metropolitan.test", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginLastLoginWriteFailure(t *testing.T) {
	ctx := context.Background()
	s, _, conn := newService(t)

	_, err := s.Register(ctx, "Admin A", "a@metropolitan.test", "password-a")
	require.NoError(t, err)

	require.NoError(t, conn.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("disk full")) //nolint:goerr113
	}))

	sess, err := s.Login(ctx, "a@metropolitan.test", "password-a")
	require.NoError(t, err, "login succeeds when the last login write fails")
	assert.NotEmpty(t, sess.Token)
	assert.Nil(t, sess.Admin.LastLogin)
}

func TestMeUnknown(t *testing.T) {
	s, _, _ := newService(t)

	_, err := s.Me(context.Background(), "ghost@metropolitan.test")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

type failingIssuer struct{}

func (failingIssuer) Issue(string) (string, error) {
	return "", errors.New("hsm offline") //nolint:goerr113
}

func TestIssuerFailure(t *testing.T) {
	s := auth.NewService(dbtest.New(t), failingIssuer{})

	_, err := s.Register(context.Background(), "Admin A", "a@metropolitan.test", "password-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to issue token")
}
