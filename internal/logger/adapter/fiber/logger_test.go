package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metropolitan-website/metropolitan-backend/internal/logger"
	adapter "github.com/metropolitan-website/metropolitan-backend/internal/logger/adapter/fiber"
)

type accessLine struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	Admin  string `json:"admin"`
	Error  string `json:"error"`
}

func consoleConfig() adapter.Config {
	return adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			DisableCheckAlive:        true,
			Console:                  logger.Console{Enabled: true},
		},
		SkipURIs:     []string{"/checkalive"},
		PrincipalKey: "email",
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		target string
		config adapter.Config
		want   *accessLine
	}{
		{
			name:   "no writers no output",
			target: "/api/news",
			want:   nil,
		},
		{
			name:   "plain get",
			target: "/api/news",
			config: consoleConfig(),
			want:   &accessLine{Status: 200, URI: "/api/news", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "query string is kept",
			target: "/api/news?page=2&limit=5",
			config: consoleConfig(),
			want:   &accessLine{Status: 200, URI: "/api/news?page=2&limit=5", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "unknown route",
			target: "/api/unknown",
			config: consoleConfig(),
			want:   &accessLine{Status: 404, URI: "/api/unknown", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "principal is logged",
			target: "/api/admin/news",
			config: consoleConfig(),
			want: &accessLine{
				Status: 200, URI: "/api/admin/news", Method: fiber.MethodGet,
				Host: "example.com", Admin: "admin@metropolitan.test",
			},
		},
		{
			name:   "checkalive is skipped",
			target: "/checkalive",
			config: consoleConfig(),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, tt.target, tt.config)

			if tt.want == nil {
				assert.Empty(t, out)

				return
			}

			require.NotEmpty(t, out)

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.Admin, got.Admin)
		})
	}
}

func capture(t *testing.T, target string, cfg adapter.Config) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	os.Stderr = w

	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(adapter.New(cfg))
	app.Get("/api/news", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/admin/news", func(c *fiber.Ctx) error {
		c.Locals("email", "admin@metropolitan.test")

		return c.SendString("ok")
	})
	app.Get("/checkalive", func(c *fiber.Ctx) error { return c.SendString("OK") })

	_, testErr := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	out := <-outC

	require.NoError(t, testErr)

	return out
}
