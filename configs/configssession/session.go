package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession sunucu taraflı session store'unu oluşturur.
// Varsayılan in-memory storage kullanılır; session cookie'si sadece
// kullanıcı kimliğine işaret eder, veri sunucuda tutulur.
func SetupSession() *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:session_id",
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
