package repositories

import (
	"context"
	"errors"

	"unirandevu.app/configs/configsdatabase"
	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IDepartmentRepository bölüm veritabanı işlemleri için arayüz.
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	FindAll(ctx context.Context) ([]models.Department, error)
}

// DepartmentRepository IDepartmentRepository arayüzünü uygular.
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository yeni bir DepartmentRepository örneği oluşturur.
func NewDepartmentRepository() IDepartmentRepository {
	return &DepartmentRepository{db: configsdatabase.GetDB()}
}

// Create yeni bir bölüm ekler. İsim benzersizliği ön kontrol yapılmadan
// unique index'e bırakılır; ihlal gorm.ErrDuplicatedKey olarak döner.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	if department == nil {
		return errors.New("geçersiz bölüm kaydı")
	}
	err := getDB(ctx, r.db).Create(department).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		configslog.Log.Error("DepartmentRepository.Create: DB hatası", zap.String("name", department.Name), zap.Error(err))
	}
	return err
}

// FindAll tüm bölümleri isim sırasıyla döndürür. Kayıt formundaki bölüm
// seçicisi tarafından oturum gerektirmeden de kullanılır.
func (r *DepartmentRepository) FindAll(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := getDB(ctx, r.db).Order("name ASC").Find(&departments).Error
	if err != nil {
		configslog.Log.Error("DepartmentRepository.FindAll: DB hatası", zap.Error(err))
		return nil, err
	}
	return departments, nil
}
