package models

// NotificationStatus bildirim gönderim durumudur. 'sent' tanımlıdır ancak
// bildirimleri tüketen/gönderen bir süreç yoktur; kayıtlar pending kalır.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
)

// Notification yeni randevu oluşturulduğunda bir kez yazılan bildirim kaydıdır.
// Oluşturulma zamanı BaseModel.CreatedAt üzerinden tutulur.
type Notification struct {
	BaseModel
	AppointmentID uint               `gorm:"index;not null"`
	Message       string             `gorm:"type:varchar(255);not null"`
	SentStatus    NotificationStatus `gorm:"type:varchar(20);default:'pending'"`

	// GORM İlişkileri
	Appointment *Appointment `gorm:"foreignKey:AppointmentID"`
}
