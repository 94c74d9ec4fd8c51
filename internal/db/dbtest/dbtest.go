// Package dbtest provides an in-memory database for tests.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/metropolitan-website/metropolitan-backend/internal/db"
)

var seq atomic.Int64 //nolint:gochecknoglobals

// New opens a private in-memory SQLite database migrated with all models.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	// one named in-memory database per call keeps tests isolated
	name := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", seq.Add(1))

	conn, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(conn), "failed to migrate test database")

	return conn
}
