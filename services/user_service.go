package services

import (
	"context"
	"errors"

	"unirandevu.app/models"
	"unirandevu.app/repositories"
)

// UserServiceError kullanıcı servisi hataları.
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const ErrUserNotFound UserServiceError = "kullanıcı bulunamadı"

// IUserService kullanıcı sorguları için arayüz.
type IUserService interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetFacultyMembers(ctx context.Context) ([]models.User, error)
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	users repositories.IUserRepository
}

// NewUserService yeni bir UserService örneği oluşturur.
func NewUserService() IUserService {
	return &UserService{users: repositories.NewUserRepository()}
}

// GetUserByID oturumdaki kullanıcıyı çözmek için her korumalı istekte çağrılır.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetFacultyMembers randevu formundaki öğretim üyesi seçicisini besler.
func (s *UserService) GetFacultyMembers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAllByRole(ctx, models.RoleFaculty)
}
