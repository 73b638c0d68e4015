package services

import (
	"context"

	"unirandevu.app/models"
	"unirandevu.app/repositories"

	"gorm.io/gorm"
)

// Test fake'leri repository arayüzlerini bellekte uygular; testler servis
// struct'larını doğrudan bu fake'lerle kurar.

type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindAllByRole(_ context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	departments []*models.Department
	nextID      uint
}

func (f *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	for _, d := range f.departments {
		if d.Name == department.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	department.ID = f.nextID
	f.departments = append(f.departments, department)
	return nil
}

func (f *fakeDepartmentRepo) FindAll(_ context.Context) ([]models.Department, error) {
	out := make([]models.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, *d)
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	slots  []*models.Availability
	nextID uint
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, slot *models.Availability) error {
	f.nextID++
	slot.ID = f.nextID
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeAvailabilityRepo) FindAllByFacultyID(_ context.Context, facultyID uint) ([]models.Availability, error) {
	var out []models.Availability
	for _, s := range f.slots {
		if s.FacultyID == facultyID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments []*models.Appointment
	nextID       uint

	// facultyDepartments bölüm dağılımı sorgusunun JOIN'ini taklit eder:
	// öğretim üyesi ID → bölüm adı. Eşlemesi olmayan randevular dağılımda
	// yer almaz (INNER JOIN davranışı).
	facultyDepartments map[uint]string
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	f.nextID++
	appointment.ID = f.nextID
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAppointmentRepo) FindAllByStudentID(_ context.Context, studentID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAllByFacultyID(_ context.Context, facultyID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.FacultyID == facultyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAll(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appointment *models.Appointment) error {
	for i, a := range f.appointments {
		if a.ID == appointment.ID {
			f.appointments[i] = appointment
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeAppointmentRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeAppointmentRepo) CountByStudentID(_ context.Context, studentID uint) (int64, error) {
	var count int64
	for _, a := range f.appointments {
		if a.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepo) CountByFacultyID(_ context.Context, facultyID uint) (int64, error) {
	var count int64
	for _, a := range f.appointments {
		if a.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepo) CountByDepartment(_ context.Context) ([]repositories.DepartmentAppointmentCount, error) {
	counts := make(map[string]int64)
	for _, a := range f.appointments {
		if deptName, ok := f.facultyDepartments[a.FacultyID]; ok {
			counts[deptName]++
		}
	}
	var out []repositories.DepartmentAppointmentCount
	for name, count := range counts {
		out = append(out, repositories.DepartmentAppointmentCount{DepartmentName: name, AppointmentCount: count})
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        uint
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	f.nextID++
	notification.ID = f.nextID
	f.notifications = append(f.notifications, notification)
	return nil
}

func studentUser(id uint) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Name: "Öğrenci", Role: models.RoleStudent}
}

func facultyUser(id uint) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Name: "Öğretim Üyesi", Role: models.RoleFaculty}
}

func adminUser(id uint) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Name: "Yönetici", Role: models.RoleAdmin}
}
