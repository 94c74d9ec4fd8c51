package web

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// cleanPath collapses repeated slashes and dot segments before routing,
// so //api//news matches /api/news.
func cleanPath(c *fiber.Ctx) error {
	p := c.Path()

	if strings.Contains(p, "//") || strings.Contains(p, "/.") {
		cleaned := path.Clean(p)
		if strings.HasSuffix(p, "/") && cleaned != "/" {
			cleaned += "/"
		}

		c.Path(cleaned)
	}

	return c.Next()
}
