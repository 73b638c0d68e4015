package migrations

import (
	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAvailabilityTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating availabilities table...")
	err := db.AutoMigrate(&models.Availability{})
	if err != nil {
		configslog.Log.Error("Failed to migrate availabilities table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Availabilities table migrated successfully")
	return nil
}
