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

// AuthServiceError kimlik doğrulama servisi hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrEmailTaken         AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrInvalidCredentials AuthServiceError = "e-posta veya parola hatalı"
	ErrInvalidRole        AuthServiceError = "geçersiz kullanıcı rolü"
	ErrPasswordHashFailed AuthServiceError = "parola oluşturulamadı"
	ErrRegistrationFailed AuthServiceError = "kayıt oluşturulamadı"
)

// RegisterInput kayıt formundan gelen veriler.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         models.Role
	DepartmentID *uint
}

// IAuthService kayıt ve giriş işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	users repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register yeni bir kullanıcı oluşturur. E-posta zaten kayıtlıysa
// ErrEmailTaken döner ve yeni satır eklenmez. Başarılı kayıt oturum açmaz;
// kullanıcı login sayfasına yönlendirilir.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !input.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
	}
	if err := user.SetPassword(input.Password); err != nil {
		configslog.Log.Error("AuthService.Register: parola hashlenemedi", zap.Error(err))
		return nil, ErrPasswordHashFailed
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Ön kontrol ile insert arasında aynı e-posta kaydedilmiş olabilir.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		configslog.Log.Error("AuthService.Register: kullanıcı oluşturulamadı", zap.String("email", input.Email), zap.Error(err))
		return nil, ErrRegistrationFailed
	}
	return user, nil
}

// Authenticate e-posta ve parolayı doğrular. Bilinmeyen e-posta ile hatalı
// parola aynı genel hatayla döner; hangisinin yanlış olduğu açıklanmaz.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
