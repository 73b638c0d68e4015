package services

import (
	"context"
	"errors"
	"fmt"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"
	"unirandevu.app/repositories"

	"go.uber.org/zap"
)

// AppointmentServiceError randevu servisi hataları.
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound       AppointmentServiceError = "randevu bulunamadı"
	ErrAppointmentForbidden      AppointmentServiceError = "başkasının randevusunu iptal edemezsiniz"
	ErrOnlyStudentsCanBook       AppointmentServiceError = "yalnızca öğrenciler randevu oluşturabilir"
	ErrAppointmentCreationFailed AppointmentServiceError = "randevu oluşturulamadı"
	ErrAppointmentCancelFailed   AppointmentServiceError = "randevu iptal edilemedi"
)

// CreateAppointmentInput randevu formundan gelen veriler. Tarih ve saatler
// opak string olarak taşınır; format veya müsaitlik doğrulaması yapılmaz.
type CreateAppointmentInput struct {
	FacultyID uint
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
}

// IAppointmentService randevu işlemleri için arayüz.
type IAppointmentService interface {
	ListAppointmentsFor(ctx context.Context, user *models.User) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, student *models.User, input CreateAppointmentInput) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, user *models.User, appointmentID uint) error
}

// AppointmentService IAppointmentService arayüzünü uygular.
type AppointmentService struct {
	appointments  repositories.IAppointmentRepository
	notifications repositories.INotificationRepository
}

// NewAppointmentService yeni bir AppointmentService örneği oluşturur.
func NewAppointmentService() IAppointmentService {
	return &AppointmentService{
		appointments:  repositories.NewAppointmentRepository(),
		notifications: repositories.NewNotificationRepository(),
	}
}

// ListAppointmentsFor kullanıcının rolüne göre randevuları döndürür:
// öğrenci kendi aldıklarını, öğretim üyesi kendi verdiklerini,
// yönetici tümünü görür. Sayfalama yoktur.
func (s *AppointmentService) ListAppointmentsFor(ctx context.Context, user *models.User) ([]models.Appointment, error) {
	switch user.Role {
	case models.RoleStudent:
		return s.appointments.FindAllByStudentID(ctx, user.ID)
	case models.RoleFaculty:
		return s.appointments.FindAllByFacultyID(ctx, user.ID)
	default:
		return s.appointments.FindAll(ctx)
	}
}

// CreateAppointment öğrenci adına scheduled durumda yeni bir randevu ve ona
// bağlı bir bildirim kaydı oluşturur. İki yazma ayrı commit'tir; bildirim
// eklenemezse randevu geri alınmaz, hata sadece loglanır.
func (s *AppointmentService) CreateAppointment(ctx context.Context, student *models.User, input CreateAppointmentInput) (*models.Appointment, error) {
	if student.Role != models.RoleStudent {
		return nil, ErrOnlyStudentsCanBook
	}

	appointment := &models.Appointment{
		StudentID:       student.ID,
		FacultyID:       input.FacultyID,
		AppointmentDate: input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Status:          models.StatusScheduled,
		Purpose:         input.Purpose,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		configslog.Log.Error("AppointmentService.CreateAppointment: randevu oluşturulamadı",
			zap.Uint("studentID", student.ID), zap.Uint("facultyID", input.FacultyID), zap.Error(err))
		return nil, ErrAppointmentCreationFailed
	}

	notification := &models.Notification{
		AppointmentID: appointment.ID,
		Message:       fmt.Sprintf("%s günü saat %s için yeni randevu oluşturuldu.", input.Date, input.StartTime),
		SentStatus:    models.NotificationStatusPending,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		configslog.Log.Error("AppointmentService.CreateAppointment: bildirim oluşturulamadı",
			zap.Uint("appointmentID", appointment.ID), zap.Error(err))
	}

	return appointment, nil
}

// CancelAppointment randevuyu iptal eder. Öğrenci ve öğretim üyesi yalnızca
// kendi randevusunu iptal edebilir; yönetici herhangi birini iptal edebilir.
// Tek yönlü geçiştir; iptal edilen randevu tekrar scheduled yapılamaz.
func (s *AppointmentService) CancelAppointment(ctx context.Context, user *models.User, appointmentID uint) error {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	if user.Role == models.RoleStudent && appointment.StudentID != user.ID {
		return ErrAppointmentForbidden
	}
	if user.Role == models.RoleFaculty && appointment.FacultyID != user.ID {
		return ErrAppointmentForbidden
	}

	appointment.Status = models.StatusCancelled
	if err := s.appointments.Update(ctx, appointment); err != nil {
		configslog.Log.Error("AppointmentService.CancelAppointment: güncelleme hatası",
			zap.Uint("appointmentID", appointmentID), zap.Error(err))
		return ErrAppointmentCancelFailed
	}
	return nil
}
