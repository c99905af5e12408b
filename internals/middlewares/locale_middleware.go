package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
)

// LocaleMiddleware menyimpan locale hasil negosiasi (?lang atau Accept-Language)
// supaya handler tinggal baca helper.LocaleFrom(c).
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helper.LocLocale, helper.ResolveLocale(c))
		return c.Next()
	}
}
