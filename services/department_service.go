package services

import (
	"context"
	"errors"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"
	"unirandevu.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DepartmentServiceError bölüm servisi hataları.
type DepartmentServiceError string

func (e DepartmentServiceError) Error() string { return string(e) }

const (
	ErrOnlyAdminCanManage       DepartmentServiceError = "bölüm yönetimi yalnızca yöneticilere açıktır"
	ErrDepartmentNameTaken      DepartmentServiceError = "bu isimde bir bölüm zaten var"
	ErrDepartmentCreationFailed DepartmentServiceError = "bölüm oluşturulamadı"
)

// CreateDepartmentInput bölüm formundan gelen veriler.
type CreateDepartmentInput struct {
	Name     string
	Building string
	Phone    string
}

// IDepartmentService bölüm işlemleri için arayüz.
type IDepartmentService interface {
	CreateDepartment(ctx context.Context, user *models.User, input CreateDepartmentInput) (*models.Department, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
}

// DepartmentService IDepartmentService arayüzünü uygular.
type DepartmentService struct {
	departments repositories.IDepartmentRepository
}

// NewDepartmentService yeni bir DepartmentService örneği oluşturur.
func NewDepartmentService() IDepartmentService {
	return &DepartmentService{departments: repositories.NewDepartmentRepository()}
}

// CreateDepartment yeni bir bölüm ekler. İsim benzersizliği ön kontrol
// edilmez; unique index ihlali ErrDepartmentNameTaken olarak döner.
func (s *DepartmentService) CreateDepartment(ctx context.Context, user *models.User, input CreateDepartmentInput) (*models.Department, error) {
	if user.Role != models.RoleAdmin {
		return nil, ErrOnlyAdminCanManage
	}

	department := &models.Department{
		Name:     input.Name,
		Building: input.Building,
		Phone:    input.Phone,
	}
	if err := s.departments.Create(ctx, department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentNameTaken
		}
		configslog.Log.Error("DepartmentService.CreateDepartment: bölüm oluşturulamadı",
			zap.String("name", input.Name), zap.Error(err))
		return nil, ErrDepartmentCreationFailed
	}
	return department, nil
}

// ListDepartments tüm bölümleri döndürür. Kayıt formundaki seçiciyi
// beslediği için oturum veya rol şartı yoktur.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.departments.FindAll(ctx)
}
