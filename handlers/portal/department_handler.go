package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/models"
	"unirandevu.app/pkg/flashmessages"
	"unirandevu.app/pkg/renderer"
	"unirandevu.app/services"
)

// DepartmentHandler bölüm yönetimi sayfasını karşılar (yalnızca yönetici).
type DepartmentHandler struct {
	users       services.IUserService
	departments services.IDepartmentService
}

// NewDepartmentHandler yeni bir DepartmentHandler örneği oluşturur.
func NewDepartmentHandler() *DepartmentHandler {
	return &DepartmentHandler{
		users:       services.NewUserService(),
		departments: services.NewDepartmentService(),
	}
}

// ListDepartments tüm bölümleri listeler. Sayfa yönetici dışındaki rollere
// kapalıdır; liste verisi ayrıca kayıt formu tarafından da kullanılır.
func (h *DepartmentHandler) ListDepartments(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if user.Role != models.RoleAdmin {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, services.ErrOnlyAdminCanManage.Error())
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	departments, err := h.departments.ListDepartments(c.UserContext())
	if err != nil {
		configslog.Log.Error("Portal - ListDepartments: liste alınamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bölümler listelenemedi.")
		departments = []models.Department{}
	}

	return renderer.Render(c, "portal/departments", "layouts/main", fiber.Map{
		"Title":       "Bölümler",
		"User":        user,
		"Departments": departments,
	})
}

// CreateDepartment yeni bir bölüm ekler. İsim benzersizliği ön kontrol
// edilmez; ihlal storage katmanından hata olarak döner.
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	input := services.CreateDepartmentInput{
		Name:     c.FormValue("department_name"),
		Building: c.FormValue("building"),
		Phone:    c.FormValue("phone"),
	}

	if _, err := h.departments.CreateDepartment(c.UserContext(), user, input); err != nil {
		switch {
		case errors.Is(err, services.ErrOnlyAdminCanManage):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, err.Error())
			return c.Redirect("/dashboard", fiber.StatusFound)
		case errors.Is(err, services.ErrDepartmentNameTaken):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		default:
			configslog.Log.Error("Portal - CreateDepartment: oluşturma hatası",
				zap.Uint("userID", user.ID), zap.String("name", input.Name), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bölüm oluşturulamadı.")
		}
		return c.Redirect("/departments", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Bölüm eklendi.")
	return c.Redirect("/departments", fiber.StatusFound)
}
