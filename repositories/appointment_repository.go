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

// DepartmentAppointmentCount dashboard grafiği için bölüm başına randevu
// sayısını taşır.
type DepartmentAppointmentCount struct {
	DepartmentName   string
	AppointmentCount int64
}

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindAllByStudentID(ctx context.Context, studentID uint) ([]models.Appointment, error)
	FindAllByFacultyID(ctx context.Context, facultyID uint) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	CountAll(ctx context.Context) (int64, error)
	CountByStudentID(ctx context.Context, studentID uint) (int64, error)
	CountByFacultyID(ctx context.Context, facultyID uint) (int64, error)
	CountByDepartment(ctx context.Context) ([]DepartmentAppointmentCount, error)
}

// AppointmentRepository IAppointmentRepository arayüzünü uygular.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository yeni bir AppointmentRepository örneği oluşturur.
func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configsdatabase.GetDB()}
}

// Create yeni bir randevu ekler. Öğretim üyesi ID'sinin gerçekten faculty
// rolünde bir kullanıcıya işaret ettiği veya slotun müsaitlikle çakıştığı
// kontrol edilmez; mevcut davranış budur.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.StudentID == 0 {
		return errors.New("geçersiz randevu kaydı")
	}
	return getDB(ctx, r.db).Create(appointment).Error
}

// FindByID belirli bir ID'ye sahip randevuyu bulur.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, errors.New("geçersiz randevu ID")
	}
	var appointment models.Appointment
	err := getDB(ctx, r.db).First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindAllByStudentID öğrencinin kendi randevularını döndürür.
func (r *AppointmentRepository) FindAllByStudentID(ctx context.Context, studentID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := getDB(ctx, r.db).Preload("Faculty").Where("student_id = ?", studentID).Order("id ASC").Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAllByStudentID: DB hatası", zap.Uint("studentID", studentID), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindAllByFacultyID öğretim üyesinin kendi randevularını döndürür.
func (r *AppointmentRepository) FindAllByFacultyID(ctx context.Context, facultyID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := getDB(ctx, r.db).Preload("Student").Where("faculty_id = ?", facultyID).Order("id ASC").Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAllByFacultyID: DB hatası", zap.Uint("facultyID", facultyID), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindAll tüm randevuları döndürür (yönetici görünümü, sayfalama yok).
func (r *AppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := getDB(ctx, r.db).Preload("Student").Preload("Faculty").Order("id ASC").Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAll: DB hatası", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// Update randevuyu Save ile günceller (durum geçişi için).
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("güncellenecek randevu geçerli değil")
	}
	return getDB(ctx, r.db).Save(appointment).Error
}

// CountAll toplam randevu sayısını döndürür.
func (r *AppointmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Appointment{}).Count(&count).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.CountAll: DB hatası", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountByStudentID öğrencinin randevu sayısını döndürür.
func (r *AppointmentRepository) CountByStudentID(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Appointment{}).Where("student_id = ?", studentID).Count(&count).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.CountByStudentID: DB hatası", zap.Uint("studentID", studentID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountByFacultyID öğretim üyesinin randevu sayısını döndürür.
func (r *AppointmentRepository) CountByFacultyID(ctx context.Context, facultyID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Appointment{}).Where("faculty_id = ?", facultyID).Count(&count).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.CountByFacultyID: DB hatası", zap.Uint("facultyID", facultyID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountByDepartment randevuları öğretim üyesinin bölümüne göre gruplar.
// INNER JOIN kullanıldığından randevusu olmayan bölümler sonuçta yer almaz.
func (r *AppointmentRepository) CountByDepartment(ctx context.Context) ([]DepartmentAppointmentCount, error) {
	var rows []DepartmentAppointmentCount
	err := getDB(ctx, r.db).
		Model(&models.Appointment{}).
		Select("departments.name AS department_name, COUNT(appointments.id) AS appointment_count").
		Joins("JOIN users ON users.id = appointments.faculty_id").
		Joins("JOIN departments ON departments.id = users.department_id").
		Group("departments.name").
		Order("departments.name ASC").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.CountByDepartment: DB hatası", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
