package services

import (
	"context"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"
	"unirandevu.app/repositories"

	"go.uber.org/zap"
)

// AvailabilityServiceError müsaitlik servisi hataları.
type AvailabilityServiceError string

func (e AvailabilityServiceError) Error() string { return string(e) }

const (
	ErrOnlyFacultyCanManage   AvailabilityServiceError = "müsaitlik yönetimi yalnızca öğretim üyelerine açıktır"
	ErrAvailabilityAddFailed  AvailabilityServiceError = "müsaitlik aralığı eklenemedi"
	ErrAvailabilityListFailed AvailabilityServiceError = "müsaitlik aralıkları listelenemedi"
)

// AddAvailabilityInput müsaitlik formundan gelen veriler.
type AddAvailabilityInput struct {
	DayOfWeek string
	StartTime string
	EndTime   string
}

// IAvailabilityService müsaitlik işlemleri için arayüz.
type IAvailabilityService interface {
	AddSlot(ctx context.Context, user *models.User, input AddAvailabilityInput) (*models.Availability, error)
	ListSlotsFor(ctx context.Context, user *models.User) ([]models.Availability, error)
}

// AvailabilityService IAvailabilityService arayüzünü uygular.
type AvailabilityService struct {
	availabilities repositories.IAvailabilityRepository
}

// NewAvailabilityService yeni bir AvailabilityService örneği oluşturur.
func NewAvailabilityService() IAvailabilityService {
	return &AvailabilityService{availabilities: repositories.NewAvailabilityRepository()}
}

// AddSlot öğretim üyesi için yeni bir müsaitlik aralığı ekler.
// Çakışma veya başlangıç/bitiş sırası kontrolü yapılmaz; üst üste binen
// aralıkların ikisi de kabul edilir.
func (s *AvailabilityService) AddSlot(ctx context.Context, user *models.User, input AddAvailabilityInput) (*models.Availability, error) {
	if user.Role != models.RoleFaculty {
		return nil, ErrOnlyFacultyCanManage
	}

	slot := &models.Availability{
		FacultyID:   user.ID,
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsAvailable: true,
	}
	if err := s.availabilities.Create(ctx, slot); err != nil {
		configslog.Log.Error("AvailabilityService.AddSlot: aralık eklenemedi",
			zap.Uint("facultyID", user.ID), zap.Error(err))
		return nil, ErrAvailabilityAddFailed
	}
	return slot, nil
}

// ListSlotsFor öğretim üyesinin tüm müsaitlik aralıklarını döndürür.
func (s *AvailabilityService) ListSlotsFor(ctx context.Context, user *models.User) ([]models.Availability, error) {
	if user.Role != models.RoleFaculty {
		return nil, ErrOnlyFacultyCanManage
	}
	slots, err := s.availabilities.FindAllByFacultyID(ctx, user.ID)
	if err != nil {
		return nil, ErrAvailabilityListFailed
	}
	return slots, nil
}
