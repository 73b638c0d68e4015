package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"unirandevu.app/pkg/flashmessages"
)

// AuthMiddleware korumalı sayfaları oturum şartına bağlar. Oturum yoksa
// kullanıcı uyarı mesajıyla login sayfasına yönlendirilir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, "Lütfen önce giriş yapın.")
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıyı login/kayıt sayfalarından
// dashboard'a yönlendirir.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Next()
}
