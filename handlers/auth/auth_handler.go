package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"
	"unirandevu.app/pkg/flashmessages"
	"unirandevu.app/pkg/renderer"
	"unirandevu.app/services"
	"unirandevu.app/utils"
)

// AuthHandler kayıt, giriş ve çıkış isteklerini karşılar.
type AuthHandler struct {
	auth        services.IAuthService
	departments services.IDepartmentService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		auth:        services.NewAuthService(),
		departments: services.NewDepartmentService(),
	}
}

// ShowRegister kayıt formunu gösterir. Bölüm seçicisi oturum gerektirmeden
// tüm bölümlerle doldurulur.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	departments, err := h.departments.ListDepartments(c.UserContext())
	if err != nil {
		configslog.Log.Error("Auth - ShowRegister: bölümler alınamadı", zap.Error(err))
		departments = []models.Department{}
	}
	return renderer.Render(c, "auth/register", "layouts/main", fiber.Map{
		"Title":       "Kayıt Ol",
		"Departments": departments,
	})
}

// Register kayıt formunu işler. E-posta zaten kayıtlıysa yeni satır eklenmez
// ve kullanıcı hata mesajıyla forma geri yönlendirilir.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input := services.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     models.Role(c.FormValue("role")),
	}
	if raw := c.FormValue("department_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			deptID := uint(id)
			input.DepartmentID = &deptID
		}
	}

	if _, err := h.auth.Register(c.UserContext(), input); err != nil {
		var svcErr services.AuthServiceError
		if !errors.As(err, &svcErr) {
			configslog.Log.Error("Auth - Register: beklenmeyen hata", zap.String("email", input.Email), zap.Error(err))
			svcErr = services.ErrRegistrationFailed
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, svcErr.Error())
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kayıt başarılı. Lütfen giriş yapın.")
	return c.Redirect("/login", fiber.StatusFound)
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/main", fiber.Map{
		"Title": "Giriş Yap",
	})
}

// Login giriş formunu işler. Bilinmeyen e-posta ile hatalı parola aynı genel
// mesajla reddedilir; başarıda oturum kullanıcı ID'sine bağlanır.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.auth.Authenticate(c.UserContext(), email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Auth - Login: beklenmeyen hata", zap.String("email", email), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrInvalidCredentials.Error())
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if err := utils.SetUserSession(c, user.ID, user.Name, string(user.Role)); err != nil {
		configslog.Log.Error("Auth - Login: session kurulamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum açılamadı, lütfen tekrar deneyin.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Giriş başarılı.")
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout oturumu temizler. Oturum zaten yoksa da aynı şekilde davranır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.ClearSession(c); err != nil {
		configslog.Log.Warn("Auth - Logout: session temizlenemedi", zap.Error(err))
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashInfoKey, "Çıkış yapıldı.")
	return c.Redirect("/login", fiber.StatusFound)
}
