package database

import (
	"unirandevu.app/configs/configslog"
	"unirandevu.app/database/migrations"
	"unirandevu.app/database/seeders"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize şemayı kurar ve örnek veriyi yükler. fresh bayrağı mevcut
// tabloları düşürüp yeniden oluşturur (versiyonlu migrasyon mekanizması
// yoktur, şema drop-and-recreate ile yönetilir).
func Initialize(db *gorm.DB, fresh bool, migrate bool, seed bool) {
	if !fresh && !migrate && !seed {
		configslog.SLog.Info("Fresh, migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	if fresh {
		configslog.SLog.Info("Mevcut tablolar düşürülüyor...")
		if err := DropAllTables(db); err != nil {
			configslog.Log.Fatal("Tablolar düşürülemedi", zap.Error(err))
			return
		}
		configslog.SLog.Info("Tablolar düşürüldü.")
		// Fresh sonrası şemanın yeniden kurulması gerekir.
		migrate = true
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı.")
}

// DropAllTables tabloları bağımlılık sırasının tersine düşürür.
func DropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.Notification{},
		&models.Appointment{},
		&models.Availability{},
		&models.User{},
		&models.Department{},
	)
}

// RunMigrationsInOrder tabloları bağımlılık sırasıyla oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Department migrasyonu çalıştırılıyor...")
	if err := migrations.MigrateDepartmentsTable(db); err != nil {
		configslog.Log.Error("Departments tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> User migrasyonu çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Availability migrasyonu çalıştırılıyor...")
	if err := migrations.MigrateAvailabilityTable(db); err != nil {
		configslog.Log.Error("Availability tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Appointment migrasyonu çalıştırılıyor...")
	if err := migrations.MigrateAppointmentsTable(db); err != nil {
		configslog.Log.Error("Appointments tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Notification migrasyonu çalıştırılıyor...")
	if err := migrations.MigrateNotificationsTable(db); err != nil {
		configslog.Log.Error("Notifications tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders örnek bölüm ve kullanıcı verisini yükler.
// Seeder'lar idempotenttir; mevcut kayıtlar atlanır.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Department seeder çalıştırılıyor...")
	if err := seeders.SeedDepartments(db); err != nil {
		configslog.Log.Error("Departments tablosu seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> User seeder çalıştırılıyor...")
	if err := seeders.SeedUsers(db); err != nil {
		configslog.Log.Error("Users tablosu seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla çalıştırıldı.")
	return nil
}
