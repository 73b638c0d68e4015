package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"unirandevu.app/configs/configssession"
	"unirandevu.app/utils"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionMiddleware(configssession.SetupSession()))

	app.Post("/login", func(c *fiber.Ctx) error {
		if err := utils.SetUserSession(c, 7, "Test Kullanıcı", "student"); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/login", GuestMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("login sayfası")
	})
	app.Get("/dashboard", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

func TestAuthMiddlewareRedirectsAnonymous(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if err != nil {
		t.Fatalf("istek: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("beklenen 302, gelen: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("beklenen /login yönlendirmesi, gelen: %q", loc)
	}
}

func TestAuthMiddlewareAllowsLoggedInUser(t *testing.T) {
	app := newTestApp()

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("login isteği: %v", err)
	}
	cookies := loginResp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login sonrası session çerezi bekleniyordu")
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("dashboard isteği: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("beklenen 200, gelen: %d", resp.StatusCode)
	}
}

func TestGuestMiddlewareRedirectsLoggedInUser(t *testing.T) {
	app := newTestApp()

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("login isteği: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	for _, cookie := range loginResp.Cookies() {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login sayfası isteği: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("beklenen 302, gelen: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("beklenen /dashboard yönlendirmesi, gelen: %q", loc)
	}
}
