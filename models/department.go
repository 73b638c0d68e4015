package models

// Department üniversite bölümünü temsil eder. Bölüm adı benzersizdir;
// aynı adla ikinci kayıt unique index tarafından reddedilir.
type Department struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Building string `gorm:"type:varchar(100)"`
	Phone    string `gorm:"type:varchar(20)"`

	// GORM İlişkileri
	Users []User `gorm:"foreignKey:DepartmentID"`
}
