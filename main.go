package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"unirandevu.app/configs/configsdatabase"
	"unirandevu.app/configs/configslog"
	"unirandevu.app/routes"
)

func main() {
	// .env opsiyoneldir; yoksa ortam değişkenleri doğrudan kullanılır.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "Üniversite Randevu Sistemi",
	})

	routes.SetupRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5001"
	}

	configslog.SLog.Infof("Sunucu %s portunda başlatılıyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
