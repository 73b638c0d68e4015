package flashmessages

import (
	"github.com/gofiber/fiber/v2"

	"unirandevu.app/utils"
)

// Flash mesaj anahtarları. Mesajlar session'da tek kullanımlık tutulur;
// okunduklarında silinirler.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	FlashWarningKey = "flash_warning"
	FlashInfoKey    = "flash_info"
)

var flashKeys = []string{FlashSuccessKey, FlashErrorKey, FlashWarningKey, FlashInfoKey}

// SetFlashMessage bir sonraki istekte gösterilmek üzere mesaj kaydeder.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages bekleyen tüm flash mesajlarını okur ve session'dan siler.
func GetFlashMessages(c *fiber.Ctx) map[string]string {
	messages := make(map[string]string)
	sess, err := utils.SessionStart(c)
	if err != nil {
		return messages
	}

	dirty := false
	for _, key := range flashKeys {
		if msg, ok := sess.Get(key).(string); ok && msg != "" {
			messages[key] = msg
			sess.Delete(key)
			dirty = true
		}
	}
	if dirty {
		_ = sess.Save()
	}
	return messages
}
