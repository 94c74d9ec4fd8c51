// Package gorm routes gorm's statement logging into zerolog.
package gorm

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// Writer implements gormlogger.Writer on top of the global zerolog logger.
type Writer struct {
	Level zerolog.Level
}

// Printf implements gormlogger.Writer.
func (w Writer) Printf(format string, args ...any) {
	log.WithLevel(w.Level).Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// New returns a gorm logger writing through zerolog.
// In dev mode every statement is logged, otherwise only slow queries and errors.
func New(devMode bool) gormlogger.Interface {
	level := gormlogger.Warn
	if devMode {
		level = gormlogger.Info
	}

	return gormlogger.New(Writer{Level: zerolog.DebugLevel}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond, //nolint:mnd
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
