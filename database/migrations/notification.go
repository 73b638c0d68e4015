package migrations

import (
	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateNotificationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating notifications table...")
	err := db.AutoMigrate(&models.Notification{})
	if err != nil {
		configslog.Log.Error("Failed to migrate notifications table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Notifications table migrated successfully")
	return nil
}
