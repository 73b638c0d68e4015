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

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAllByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return &UserRepository{db: configsdatabase.GetDB()}
}

// Create yeni bir kullanıcı kaydı ekler.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("geçersiz kullanıcı kaydı")
	}
	return getDB(ctx, r.db).Create(user).Error
}

// FindByID belirli bir ID'ye sahip kullanıcıyı bölümüyle birlikte bulur.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var user models.User
	err := getDB(ctx, r.db).Preload("Department").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByEmail e-posta adresine göre kullanıcı arar.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := getDB(ctx, r.db).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB hatası", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindAllByRole belirli bir role sahip tüm kullanıcıları döndürür.
// Randevu oluşturma formundaki öğretim üyesi listesi için kullanılır.
func (r *UserRepository) FindAllByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	err := getDB(ctx, r.db).Where("role = ?", role).Order("name ASC").Find(&users).Error
	if err != nil {
		configslog.Log.Error("UserRepository.FindAllByRole: DB hatası", zap.String("role", string(role)), zap.Error(err))
		return nil, err
	}
	return users, nil
}
