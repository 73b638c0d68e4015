package services

import (
	"context"
	"testing"

	"unirandevu.app/models"
)

func seedDashboardAppointments() *fakeAppointmentRepo {
	appointments := &fakeAppointmentRepo{
		facultyDepartments: map[uint]string{
			10: "Computer Science",
			11: "Computer Science",
			12: "Mathematics",
		},
	}
	ctx := context.Background()
	_ = appointments.Create(ctx, &models.Appointment{StudentID: 1, FacultyID: 10})
	_ = appointments.Create(ctx, &models.Appointment{StudentID: 1, FacultyID: 11})
	_ = appointments.Create(ctx, &models.Appointment{StudentID: 2, FacultyID: 12})
	// Bölümü olmayan öğretim üyesi: dağılımda görünmez.
	_ = appointments.Create(ctx, &models.Appointment{StudentID: 2, FacultyID: 99})
	return appointments
}

func TestGetStatsForMyCountByRole(t *testing.T) {
	svc := &DashboardService{appointments: seedDashboardAppointments()}

	tests := []struct {
		name     string
		user     *models.User
		wantMine int64
	}{
		{"öğrenci kendi aldıklarını sayar", studentUser(1), 2},
		{"öğretim üyesi kendi verdiklerini sayar", facultyUser(12), 1},
		{"yönetici için toplamın kendisi", adminUser(5), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := svc.GetStatsFor(context.Background(), tt.user)
			if err != nil {
				t.Fatalf("stats: %v", err)
			}
			if stats.TotalAppointments != 4 {
				t.Fatalf("toplam 4 olmalı, gelen: %d", stats.TotalAppointments)
			}
			if stats.MyAppointments != tt.wantMine {
				t.Fatalf("beklenen %d, gelen: %d", tt.wantMine, stats.MyAppointments)
			}
		})
	}
}

func TestGetStatsForDepartmentDistribution(t *testing.T) {
	svc := &DashboardService{appointments: seedDashboardAppointments()}

	stats, err := svc.GetStatsFor(context.Background(), adminUser(5))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	counts := make(map[string]int64)
	var sum int64
	for _, dc := range stats.DepartmentCounts {
		counts[dc.DepartmentName] = dc.AppointmentCount
		sum += dc.AppointmentCount
	}

	if counts["Computer Science"] != 2 {
		t.Fatalf("Computer Science 2 olmalı, gelen: %d", counts["Computer Science"])
	}
	if counts["Mathematics"] != 1 {
		t.Fatalf("Mathematics 1 olmalı, gelen: %d", counts["Mathematics"])
	}
	// Bölümsüz öğretim üyesinin randevusu dağılıma girmez.
	if sum >= stats.TotalAppointments {
		t.Fatalf("dağılım toplamı (%d) genel toplamdan (%d) küçük olmalı", sum, stats.TotalAppointments)
	}
	if len(stats.DepartmentCounts) != 2 {
		t.Fatalf("randevusu olmayan bölümler listelenmez, satır sayısı: %d", len(stats.DepartmentCounts))
	}
}
