// Package config handles input from etc/main.toml, .env files and METRO_* environment variables.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables overriding single config keys,
	// e.g. METRO_DB_HOST overrides DB.Host.
	EnvPrefix = "METRO"

	// EnvConfigJSON names the environment variable holding a JSON document merged over the file config.
	EnvConfigJSON = "METRO_CONFIG_JSON"

	minJWTSecretLen = 32
	masked          = "********"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	// a missing .env is fine, real environment variables still apply
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filepath.Join(path, "main.toml"))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "Metropolitan Backend")
	v.SetDefault("webserver.port", 8080)
	v.SetDefault("webserver.shutdowntime", 5)
	v.SetDefault("webserver.corsorigins", "*")
	v.SetDefault("webserver.readtimeout", 30*time.Second)
	v.SetDefault("webserver.loginratelimit", 10)
	v.SetDefault("webserver.loginratewindow", time.Minute)
	v.SetDefault("db.gormengine", EngineSQLite)
	v.SetDefault("db.sqlitepath", "metropolitan.db")
	v.SetDefault("auth.issuer", "metropolitan-backend")
	v.SetDefault("auth.tokenttl", 24*time.Hour)
	v.SetDefault("pagination.publiclimit", 10)
	v.SetDefault("pagination.adminlimit", 20)
	v.SetDefault("pagination.maxlimit", 100)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfigJSON config as JSON String. Secrets are masked.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	out := *c
	if out.DB.Password != "" {
		out.DB.Password = masked
	}

	if out.Auth.JWTSecret != "" {
		out.Auth.JWTSecret = masked
	}

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(out); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	// validate access-control-allow-origin
	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if !c.DevMode && len(c.Auth.JWTSecret) < minJWTSecretLen {
		return errors.Wrap(ErrJWTSecretTooShort, invalidErrMessage)
	}

	p := c.Pagination
	if p.MaxLimit < 0 || (p.MaxLimit > 0 && (p.PublicLimit > p.MaxLimit || p.AdminLimit > p.MaxLimit)) {
		return errors.Wrap(ErrInvalidMaxLimit, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	return nil
}
