package services

import (
	"context"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"
	"unirandevu.app/repositories"

	"go.uber.org/zap"
)

// DashboardStats dashboard sayfasındaki sayaçları taşır.
type DashboardStats struct {
	TotalAppointments int64
	MyAppointments    int64
	DepartmentCounts  []repositories.DepartmentAppointmentCount
}

// IDashboardService dashboard toplamları için arayüz.
type IDashboardService interface {
	GetStatsFor(ctx context.Context, user *models.User) (*DashboardStats, error)
}

// DashboardService IDashboardService arayüzünü uygular.
type DashboardService struct {
	appointments repositories.IAppointmentRepository
}

// NewDashboardService yeni bir DashboardService örneği oluşturur.
func NewDashboardService() IDashboardService {
	return &DashboardService{appointments: repositories.NewAppointmentRepository()}
}

// GetStatsFor toplam randevu sayısını, role göre "randevularım" sayısını ve
// bölüm bazlı dağılımı hesaplar. Yönetici için randevularım sayısı toplamın
// kendisidir; bu çifte sayım mevcut davranış olarak kabul edilmiştir.
// Bölüm dağılımı INNER JOIN ile hesaplandığından randevusu olmayan bölümler
// listede yer almaz.
func (s *DashboardService) GetStatsFor(ctx context.Context, user *models.User) (*DashboardStats, error) {
	total, err := s.appointments.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	var mine int64
	switch user.Role {
	case models.RoleStudent:
		mine, err = s.appointments.CountByStudentID(ctx, user.ID)
	case models.RoleFaculty:
		mine, err = s.appointments.CountByFacultyID(ctx, user.ID)
	default:
		mine = total
	}
	if err != nil {
		return nil, err
	}

	departmentCounts, err := s.appointments.CountByDepartment(ctx)
	if err != nil {
		configslog.Log.Error("DashboardService.GetStatsFor: bölüm dağılımı alınamadı",
			zap.Uint("userID", user.ID), zap.Error(err))
		return nil, err
	}

	return &DashboardStats{
		TotalAppointments: total,
		MyAppointments:    mine,
		DepartmentCounts:  departmentCounts,
	}, nil
}
