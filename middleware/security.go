package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// securityHeaders apply to every response; there are no pages to frame or scripts to load
var securityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Referrer-Policy":         "no-referrer",
	"Permissions-Policy":      "geolocation=(), microphone=(), camera=()",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

// Security sets response headers for a JSON-only API. Memo and plan
// responses are never cached. hsts adds Strict-Transport-Security and
// should only be on behind TLS.
func Security(hsts bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for name, value := range securityHeaders {
			c.Set(name, value)
		}
		if hsts {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		if strings.HasPrefix(c.Path(), "/api/") {
			c.Set("Cache-Control", "no-store")
		}
		return c.Next()
	}
}
