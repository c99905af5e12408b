package middleware

import (
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireRoles menolak request dengan 403 JSON (bukan redirect) jika actor
// tidak memegang salah satu role yang diminta.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.EnsureRoles(c, roles...); err != nil {
			return helper.FromFiberError(c, err)
		}
		return c.Next()
	}
}
