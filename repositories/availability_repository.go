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

// IAvailabilityRepository müsaitlik veritabanı işlemleri için arayüz.
type IAvailabilityRepository interface {
	Create(ctx context.Context, slot *models.Availability) error
	FindAllByFacultyID(ctx context.Context, facultyID uint) ([]models.Availability, error)
}

// AvailabilityRepository IAvailabilityRepository arayüzünü uygular.
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository yeni bir AvailabilityRepository örneği oluşturur.
func NewAvailabilityRepository() IAvailabilityRepository {
	return &AvailabilityRepository{db: configsdatabase.GetDB()}
}

// Create yeni bir müsaitlik aralığı ekler. Çakışma veya sıra kontrolü
// yapılmaz; aynı aralık birden fazla kez eklenebilir.
func (r *AvailabilityRepository) Create(ctx context.Context, slot *models.Availability) error {
	if slot == nil || slot.FacultyID == 0 {
		return errors.New("geçersiz müsaitlik kaydı")
	}
	return getDB(ctx, r.db).Create(slot).Error
}

// FindAllByFacultyID bir öğretim üyesinin tüm müsaitlik aralıklarını döndürür.
func (r *AvailabilityRepository) FindAllByFacultyID(ctx context.Context, facultyID uint) ([]models.Availability, error) {
	if facultyID == 0 {
		return nil, errors.New("geçersiz öğretim üyesi ID")
	}
	var slots []models.Availability
	err := getDB(ctx, r.db).Where("faculty_id = ?", facultyID).Order("id ASC").Find(&slots).Error
	if err != nil {
		configslog.Log.Error("AvailabilityRepository.FindAllByFacultyID: DB hatası", zap.Uint("facultyID", facultyID), zap.Error(err))
		return nil, err
	}
	return slots, nil
}
