package config

import (
	"time"

	"github.com/metropolitan-website/metropolitan-backend/internal/logger"
)

// Auth holds the admin token settings.
type Auth struct {
	JWTSecret string        // HMAC secret used to sign admin tokens
	Issuer    string        // iss claim of issued tokens
	TokenTTL  time.Duration // lifetime of an issued token
}

// Pagination holds the default page sizes used when a request omits limit.
type Pagination struct {
	PublicLimit int // default limit of public list endpoints
	AdminLimit  int // default limit of admin list endpoints
	MaxLimit    int // largest limit a client may request, capped at pagination.MaxLimit
}

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	DB         DB
	Log        logger.Log
	Title      string
	Webserver  Webserver
	Auth       Auth
	Pagination Pagination
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath       bool          // use clean path middleware to allow multi slash requests
	DisableRecover  bool          // disable recover middleware
	Port            int           // listening port for the webserver
	ShutDownTime    int           // wait time for shutdown
	URL             string        // base url for the webserver
	CORSOrigins     string        // comma separated list of allowed origins, "*" for any
	ReadTimeout     time.Duration // fasthttp read timeout
	LoginRateLimit  int           // max auth requests per client within LoginRateWindow, 0 disables the limiter
	LoginRateWindow time.Duration // window of the auth limiter
}
