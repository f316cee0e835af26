// Package visitor identifies returning browsers with a long-lived cookie so
// per-visitor preferences can be stored server side.
package visitor

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the cookie carrying the visitor id.
	CookieName = "holo_visitor"
	// LocalsKey is the fiber.Ctx locals key holding the visitor id.
	LocalsKey = "visitor"

	cookieLifetime = 365 * 24 * time.Hour
)

// New returns a middleware that reads the visitor cookie, issuing a fresh id
// when it is missing or malformed.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(CookieName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(cookieLifetime),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(LocalsKey, id)
		return c.Next()
	}
}

// ID returns the visitor id set by the middleware, or "" when it did not run.
func ID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
