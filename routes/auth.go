package routes

import (
	"github.com/gofiber/fiber/v2"

	auth_handlers "unirandevu.app/handlers/auth"
	"unirandevu.app/middlewares"
)

// registerAuthRoutes kayıt, giriş ve çıkış rotalarını tanımlar.
// Kayıt ve giriş sayfaları oturum gerektirmez; giriş yapmış kullanıcı bu
// sayfalardan dashboard'a yönlendirilir. Rotalar kök seviyede olduğundan
// middleware grup yerine rota başına eklenir.
func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()

	app.Get("/register", middlewares.GuestMiddleware, authHandler.ShowRegister)
	app.Post("/register", middlewares.GuestMiddleware, authHandler.Register)
	app.Get("/login", middlewares.GuestMiddleware, authHandler.ShowLogin)
	app.Post("/login", middlewares.GuestMiddleware, authHandler.Login)

	// Logout oturum şartı aramaz; oturum yoksa da login'e döner (idempotent).
	app.Get("/logout", authHandler.Logout)
}
