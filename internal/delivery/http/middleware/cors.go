package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewCORS allows the given origins. Entries may use a subdomain wildcard such
// as "https://*.netlify.app"; a bare "*" allows everything and turns
// credentials off.
func NewCORS(origins []string) fiber.Handler {
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		origins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders:     []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: !allowAll,
	})
}

// OriginMatcher reports whether an Origin header matches one of patterns,
// using the same wildcard rules as NewCORS. The websocket upgrader uses it.
func OriginMatcher(patterns []string) func(origin string) bool {
	clean := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimRight(strings.TrimSpace(p), "/")); p != "" {
			clean = append(clean, p)
		}
	}

	return func(origin string) bool {
		origin = strings.ToLower(strings.TrimSpace(origin))
		for _, p := range clean {
			if p == "*" || p == origin {
				return true
			}
			prefix, suffix, ok := strings.Cut(p, "*")
			if !ok {
				continue
			}
			if len(origin) > len(prefix)+len(suffix) &&
				strings.HasPrefix(origin, prefix) &&
				strings.HasSuffix(origin, suffix) {
				host := origin[len(prefix) : len(origin)-len(suffix)]
				if !strings.ContainsAny(host, "/:") {
					return true
				}
			}
		}
		return false
	}
}
