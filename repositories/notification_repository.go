package repositories

import (
	"context"
	"errors"

	"unirandevu.app/configs/configsdatabase"
	"unirandevu.app/models"

	"gorm.io/gorm"
)

// INotificationRepository bildirim veritabanı işlemleri için arayüz.
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// NotificationRepository INotificationRepository arayüzünü uygular.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository yeni bir NotificationRepository örneği oluşturur.
func NewNotificationRepository() INotificationRepository {
	return &NotificationRepository{db: configsdatabase.GetDB()}
}

// Create yeni bir bildirim kaydı ekler. Bildirimi gönderen bir süreç yoktur;
// kayıt pending durumunda kalır.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification == nil || notification.AppointmentID == 0 {
		return errors.New("geçersiz bildirim kaydı")
	}
	return getDB(ctx, r.db).Create(notification).Error
}
