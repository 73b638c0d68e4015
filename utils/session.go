package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları. Role ve isim sadece görüntüleme kolaylığı için
// session'da tutulur; yetki kontrolleri her istekte DB'deki kullanıcı
// üzerinden yapılır.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyUserRole = "user_role"
)

var (
	ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")
	ErrUserIDMissing       = errors.New("session içinde kullanıcı ID yok")
)

// SessionStart istek için session'ı locals'taki store üzerinden açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get(SessionKeyUserID)
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return 0, ErrUserIDMissing
	}
	return userID, nil
}

// SetUserSession başarılı login sonrası oturumu kullanıcıya bağlar.
func SetUserSession(c *fiber.Ctx, userID uint, name string, role string) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(SessionKeyUserID, userID)
	sess.Set(SessionKeyUserName, name)
	sess.Set(SessionKeyUserRole, role)
	return sess.Save()
}

// ClearSession oturumu temizler. Oturum yoksa da hata dönmez (idempotent).
func ClearSession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
