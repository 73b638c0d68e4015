package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"unirandevu.app/utils"
)

// SessionMiddleware session store'u locals'a koyar ve oturum varsa temel
// kullanıcı bilgilerini (ID, isim, rol) locals'a taşır. Oturum yoksa istek
// işaretlenmeden devam eder; erişim kararını AuthMiddleware verir.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", store)

		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
		}
		if name, ok := sess.Get(utils.SessionKeyUserName).(string); ok {
			c.Locals("userName", name)
		}
		if role, ok := sess.Get(utils.SessionKeyUserRole).(string); ok {
			c.Locals("userRole", role)
		}
		return c.Next()
	}
}
