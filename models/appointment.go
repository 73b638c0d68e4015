package models

// AppointmentStatus randevunun durumudur.
// 'completed' şemada tanımlıdır ancak hiçbir operasyon tarafından
// set edilmez; tek gözlemlenen geçiş scheduled→cancelled'dır.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment bir öğrencinin bir öğretim üyesiyle randevusudur.
// Tarih ve saatler opak string olarak saklanır; format doğrulaması yapılmaz.
type Appointment struct {
	BaseModel
	StudentID       uint              `gorm:"index;not null"`
	FacultyID       uint              `gorm:"index;not null"`
	AppointmentDate string            `gorm:"type:varchar(10);not null"` // 'YYYY-MM-DD'
	StartTime       string            `gorm:"type:varchar(5);not null"`
	EndTime         string            `gorm:"type:varchar(5);not null"`
	Status          AppointmentStatus `gorm:"type:varchar(20);default:'scheduled'"`
	Purpose         string            `gorm:"type:varchar(255)"`

	// GORM İlişkileri
	Student *User `gorm:"foreignKey:StudentID"`
	Faculty *User `gorm:"foreignKey:FacultyID"`
}
