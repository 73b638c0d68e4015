package seeders

import (
	"errors"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDepartments örnek bölümleri oluşturur. Mevcut bölümler isimlerine
// göre atlanır; seeder tekrar çalıştırılabilir.
func SeedDepartments(db *gorm.DB) error {
	departmentsToSeed := []models.Department{
		{Name: "Computer Science", Building: "Ahlberg Hall", Phone: "316-978-3000"},
		{Name: "Mathematics", Building: "Jabara Hall", Phone: "316-978-3160"},
		{Name: "Electrical Engineering", Building: "Wallace Hall", Phone: "316-978-3400"},
	}

	var createdCount int64

	configslog.SLog.Info("Bölüm seed işlemi başlıyor...")

	for _, departmentToSeed := range departmentsToSeed {
		var existing models.Department
		result := db.Where("name = ?", departmentToSeed.Name).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Bölüm '%s' zaten mevcut, oluşturma atlanıyor.", departmentToSeed.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Bölüm kontrol edilirken veritabanı hatası",
				zap.String("name", departmentToSeed.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(&departmentToSeed).Error; err != nil {
			configslog.Log.Error("Bölüm oluşturulamadı",
				zap.String("name", departmentToSeed.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Bölüm '%s' oluşturuldu (ID: %d).", departmentToSeed.Name, departmentToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni bölüm seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm bölümler zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
