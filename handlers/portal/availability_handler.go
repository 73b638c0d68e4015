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

// AvailabilityHandler öğretim üyesi müsaitlik sayfasını karşılar.
type AvailabilityHandler struct {
	users          services.IUserService
	availabilities services.IAvailabilityService
}

// NewAvailabilityHandler yeni bir AvailabilityHandler örneği oluşturur.
func NewAvailabilityHandler() *AvailabilityHandler {
	return &AvailabilityHandler{
		users:          services.NewUserService(),
		availabilities: services.NewAvailabilityService(),
	}
}

// ListAvailability öğretim üyesinin müsaitlik aralıklarını listeler.
// Öğretim üyesi olmayan kullanıcılar dashboard'a yönlendirilir.
func (h *AvailabilityHandler) ListAvailability(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	slots, err := h.availabilities.ListSlotsFor(c.UserContext(), user)
	if err != nil {
		if errors.Is(err, services.ErrOnlyFacultyCanManage) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, err.Error())
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		configslog.Log.Error("Portal - ListAvailability: liste alınamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Müsaitlik aralıkları listelenemedi.")
		slots = []models.Availability{}
	}

	return renderer.Render(c, "portal/availability", "layouts/main", fiber.Map{
		"Title": "Müsaitlik Aralıklarım",
		"User":  user,
		"Slots": slots,
	})
}

// AddAvailability yeni bir müsaitlik aralığı ekler. Çakışan aralıklar
// reddedilmez; mevcut davranış budur.
func (h *AvailabilityHandler) AddAvailability(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	input := services.AddAvailabilityInput{
		DayOfWeek: c.FormValue("day_of_week"),
		StartTime: c.FormValue("start_time"),
		EndTime:   c.FormValue("end_time"),
	}

	if _, err := h.availabilities.AddSlot(c.UserContext(), user, input); err != nil {
		if errors.Is(err, services.ErrOnlyFacultyCanManage) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, err.Error())
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		configslog.Log.Error("Portal - AddAvailability: ekleme hatası", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Müsaitlik aralığı eklenemedi.")
		return c.Redirect("/availability", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Müsaitlik aralığı eklendi.")
	return c.Redirect("/availability", fiber.StatusFound)
}
