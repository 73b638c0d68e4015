package seeders

import (
	"errors"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type userSeed struct {
	Name           string
	Email          string
	Role           models.Role
	Password       string
	DepartmentName string
}

// SeedUsers örnek yönetici, öğretim üyesi ve öğrenci hesaplarını oluşturur.
// Parolalar demo amaçlıdır ve bcrypt ile hashlenerek yazılır. Mevcut
// kullanıcılar e-postalarına göre atlanır.
func SeedUsers(db *gorm.DB) error {
	usersToSeed := []userSeed{
		{Name: "Admin User", Email: "admin@university.edu", Role: models.RoleAdmin, Password: "admin123", DepartmentName: "Computer Science"},
		{Name: "Dr. Johnson (Computer Science)", Email: "johnson@wsu.edu", Role: models.RoleFaculty, Password: "demo-johnson", DepartmentName: "Computer Science"},
		{Name: "Dr. Emily Lee (Mathematics)", Email: "elee@wsu.edu", Role: models.RoleFaculty, Password: "demo-lee", DepartmentName: "Mathematics"},
		{Name: "Dr. Patel (Electrical Engineering)", Email: "patel@wsu.edu", Role: models.RoleFaculty, Password: "demo-patel", DepartmentName: "Electrical Engineering"},
		{Name: "John Student", Email: "student@university.edu", Role: models.RoleStudent, Password: "student123", DepartmentName: "Computer Science"},
	}

	var createdCount int64

	configslog.SLog.Info("Kullanıcı seed işlemi başlıyor...")

	for _, seed := range usersToSeed {
		var existing models.User
		result := db.Where("email = ?", seed.Email).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Kullanıcı '%s' zaten mevcut, oluşturma atlanıyor.", seed.Email)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kullanıcı kontrol edilirken veritabanı hatası",
				zap.String("email", seed.Email), zap.Error(result.Error))
			return result.Error
		}

		var department models.Department
		if err := db.Where("name = ?", seed.DepartmentName).First(&department).Error; err != nil {
			configslog.Log.Error("Kullanıcının bölümü bulunamadı",
				zap.String("email", seed.Email), zap.String("department", seed.DepartmentName), zap.Error(err))
			return err
		}

		user := models.User{
			Name:         seed.Name,
			Email:        seed.Email,
			Role:         seed.Role,
			DepartmentID: &department.ID,
		}
		if err := user.SetPassword(seed.Password); err != nil {
			configslog.Log.Error("Kullanıcı parolası hashlenemedi", zap.String("email", seed.Email), zap.Error(err))
			return err
		}

		if err := db.Create(&user).Error; err != nil {
			configslog.Log.Error("Kullanıcı oluşturulamadı", zap.String("email", seed.Email), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Kullanıcı '%s' oluşturuldu (ID: %d, Rol: %s).", seed.Email, user.ID, seed.Role)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni kullanıcı seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm kullanıcılar zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
