package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"unirandevu.app/models"
	"unirandevu.app/services"
)

var errNoSessionUser = errors.New("oturumda kullanıcı yok")

// currentUser oturumdaki kullanıcı ID'sini veritabanından çözer.
// AuthMiddleware'den geçmiş isteklerde locals'ta her zaman userID bulunur;
// kullanıcı bu arada silinmemiş olmalıdır (uygulama hiç silmez).
func currentUser(c *fiber.Ctx, users services.IUserService) (*models.User, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return nil, errNoSessionUser
	}
	return users.GetUserByID(c.UserContext(), userID)
}
