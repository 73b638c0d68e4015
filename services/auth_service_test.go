package services

import (
	"context"
	"errors"
	"testing"

	"unirandevu.app/models"
)

func newAuthServiceForTest(users *fakeUserRepo) *AuthService {
	return &AuthService{users: users}
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthServiceForTest(users)

	deptID := uint(1)
	user, err := svc.Register(context.Background(), RegisterInput{
		Name:         "John Student",
		Email:        "student@university.edu",
		Password:     "student123",
		Role:         models.RoleStudent,
		DepartmentID: &deptID,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("kullanıcı ID atanmadı")
	}
	if user.PasswordHash == "" || user.PasswordHash == "student123" {
		t.Fatal("parola düz metin saklanmış")
	}
	if !user.CheckPassword("student123") {
		t.Fatal("hash doğrulanamadı")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthServiceForTest(users)

	input := RegisterInput{Name: "A", Email: "a@uni.edu", Password: "pw", Role: models.RoleStudent}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("ilk kayıt: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("beklenen ErrEmailTaken, gelen: %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("yeni satır eklenmemeliydi, kullanıcı sayısı: %d", len(users.users))
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newAuthServiceForTest(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@uni.edu", Password: "pw", Role: models.Role("professor"),
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("beklenen ErrInvalidRole, gelen: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthServiceForTest(users)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@uni.edu", Password: "dogru-parola", Role: models.RoleFaculty,
	}); err != nil {
		t.Fatalf("kayıt: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"doğru bilgiler", "a@uni.edu", "dogru-parola", nil},
		{"hatalı parola", "a@uni.edu", "yanlis", ErrInvalidCredentials},
		{"bilinmeyen e-posta", "yok@uni.edu", "dogru-parola", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("beklenmeyen hata: %v", err)
				}
				if user == nil || user.Email != tt.email {
					t.Fatal("yanlış kullanıcı döndü")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("beklenen %v, gelen: %v", tt.wantErr, err)
			}
			if user != nil {
				t.Fatal("hata durumunda kullanıcı dönmemeli")
			}
		})
	}
}
