package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unirandevu.app/configs/configslog"
	"unirandevu.app/pkg/flashmessages"
	"unirandevu.app/pkg/renderer"
	"unirandevu.app/services"
)

// DashboardHandler dashboard sayfasını karşılar.
type DashboardHandler struct {
	users     services.IUserService
	dashboard services.IDashboardService
}

// NewDashboardHandler yeni bir DashboardHandler örneği oluşturur.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{
		users:     services.NewUserService(),
		dashboard: services.NewDashboardService(),
	}
}

// HomePage toplam randevu sayısını, role göre "randevularım" sayısını ve
// bölüm bazlı randevu dağılımını gösterir.
func (h *DashboardHandler) HomePage(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	stats, err := h.dashboard.GetStatsFor(c.UserContext(), user)
	if err != nil {
		configslog.Log.Error("Portal - HomePage: istatistikler alınamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Dashboard verileri alınamadı.")
		stats = &services.DashboardStats{}
	}

	return renderer.Render(c, "portal/dashboard", "layouts/main", fiber.Map{
		"Title": "Dashboard",
		"User":  user,
		"Stats": stats,
	})
}
