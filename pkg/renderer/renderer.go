package renderer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"unirandevu.app/pkg/flashmessages"
)

// View tarafında kullanılan anahtarlar.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
	FlashWarningKeyView = "Warning"
	FlashInfoKeyView    = "Info"
)

// SetFlashMessages flash map'ini view verisine taşır.
func SetFlashMessages(data fiber.Map, messages map[string]string) {
	if msg, ok := messages[flashmessages.FlashSuccessKey]; ok {
		data[FlashSuccessKeyView] = msg
	}
	if msg, ok := messages[flashmessages.FlashErrorKey]; ok {
		data[FlashErrorKeyView] = msg
	}
	if msg, ok := messages[flashmessages.FlashWarningKey]; ok {
		data[FlashWarningKeyView] = msg
	}
	if msg, ok := messages[flashmessages.FlashInfoKey]; ok {
		data[FlashInfoKeyView] = msg
	}
}

// Render view'i layout ile birlikte render eder; bekleyen flash mesajlarını
// otomatik olarak view verisine ekler. status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	SetFlashMessages(data, flashmessages.GetFlashMessages(c))

	if name, ok := c.Locals("userName").(string); ok {
		data["CurrentUserName"] = name
	}
	if role, ok := c.Locals("userRole").(string); ok {
		data["CurrentUserRole"] = role
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
