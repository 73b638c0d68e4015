package flashmessages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func TestFlashMessagesReadOnce(t *testing.T) {
	store := session.New()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	})

	app.Post("/set", func(c *fiber.Ctx) error {
		return SetFlashMessage(c, FlashSuccessKey, "İşlem tamamlandı.")
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		messages := GetFlashMessages(c)
		return c.SendString(messages[FlashSuccessKey])
	})

	setResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set", nil))
	if err != nil {
		t.Fatalf("set isteği: %v", err)
	}
	cookies := setResp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("flash sonrası session çerezi bekleniyordu")
	}

	read := func() string {
		req := httptest.NewRequest(http.MethodGet, "/read", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("read isteği: %v", err)
		}
		body := make([]byte, 256)
		n, _ := resp.Body.Read(body)
		return string(body[:n])
	}

	if got := read(); got != "İşlem tamamlandı." {
		t.Fatalf("ilk okuma mesajı döndürmeli, gelen: %q", got)
	}
	if got := read(); got != "" {
		t.Fatalf("ikinci okuma boş olmalı, gelen: %q", got)
	}
}

func TestGetFlashMessagesWithoutStore(t *testing.T) {
	app := fiber.New()
	app.Get("/read", func(c *fiber.Ctx) error {
		messages := GetFlashMessages(c)
		if len(messages) != 0 {
			t.Errorf("store yokken boş map beklenirdi, gelen: %v", messages)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/read", nil)); err != nil {
		t.Fatalf("istek: %v", err)
	}
}
