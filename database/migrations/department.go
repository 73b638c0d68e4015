package migrations

import (
	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateDepartmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating departments table...")
	err := db.AutoMigrate(&models.Department{})
	if err != nil {
		configslog.Log.Error("Failed to migrate departments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Departments table migrated successfully")
	return nil
}
