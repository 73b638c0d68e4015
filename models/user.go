package models

import "golang.org/x/crypto/bcrypt"

// Role kullanıcının sistemdeki rolüdür. Serbest metin değil kapalı bir
// kümedir; kayıt sırasında IsValid ile doğrulanır.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// IsValid rolün tanımlı üç değerden biri olup olmadığını kontrol eder.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User öğrenci, öğretim üyesi veya yönetici hesabıdır.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	DepartmentID *uint  `gorm:"index"`

	// GORM İlişkileri
	Department          *Department   `gorm:"foreignKey:DepartmentID"`
	Availabilities      []Availability `gorm:"foreignKey:FacultyID"`
	StudentAppointments []Appointment  `gorm:"foreignKey:StudentID"`
	FacultyAppointments []Appointment  `gorm:"foreignKey:FacultyID"`
}

// SetPassword parolayı bcrypt ile hashleyip kullanıcıya yazar.
// Parola hiçbir zaman düz metin olarak saklanmaz.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword verilen parolayı kayıtlı hash ile karşılaştırır.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
