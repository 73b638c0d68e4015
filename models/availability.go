package models

// Availability bir öğretim üyesinin müsaitlik aralığıdır (slot).
// Saatler opak string olarak saklanır ('09:00' gibi); çakışan veya ters
// sıralı aralıklar engellenmez, bu mevcut davranışın parçasıdır.
type Availability struct {
	BaseModel
	FacultyID   uint   `gorm:"index;not null"`
	DayOfWeek   string `gorm:"type:varchar(10);not null"` // örn. 'Mon'
	StartTime   string `gorm:"type:varchar(5);not null"`  // '09:00'
	EndTime     string `gorm:"type:varchar(5);not null"`  // '10:00'
	IsAvailable bool   `gorm:"default:true"`

	// GORM İlişkileri
	Faculty *User `gorm:"foreignKey:FacultyID"`
}
