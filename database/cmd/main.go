package main

import (
	"flag"

	"github.com/joho/godotenv"

	"unirandevu.app/configs/configsdatabase"
	"unirandevu.app/configs/configslog"
	"unirandevu.app/database"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	freshFlag := flag.Bool("fresh", false, "Mevcut tabloları düşürüp şemayı yeniden oluştur")
	migrateFlag := flag.Bool("migrate", false, "Migrasyonları çalıştır")
	seedFlag := flag.Bool("seed", false, "Örnek veriyi yükle")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *freshFlag, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
