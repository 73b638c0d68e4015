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
)

// AppointmentHandler randevu listeleme, oluşturma ve iptal isteklerini karşılar.
type AppointmentHandler struct {
	users        services.IUserService
	appointments services.IAppointmentService
}

// NewAppointmentHandler yeni bir AppointmentHandler örneği oluşturur.
func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{
		users:        services.NewUserService(),
		appointments: services.NewAppointmentService(),
	}
}

// ListAppointments role göre randevuları listeler: öğrenci kendi aldıklarını,
// öğretim üyesi kendi verdiklerini, yönetici tümünü görür.
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	appointments, err := h.appointments.ListAppointmentsFor(c.UserContext(), user)
	if err != nil {
		configslog.Log.Error("Portal - ListAppointments: liste alınamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Randevular listelenemedi.")
		appointments = []models.Appointment{}
	}

	return renderer.Render(c, "portal/appointments", "layouts/main", fiber.Map{
		"Title":        "Randevularım",
		"User":         user,
		"Appointments": appointments,
	})
}

// ShowCreateAppointment yeni randevu formunu gösterir. Form yalnızca
// öğrencilere açıktır; seçici tüm öğretim üyeleriyle doldurulur.
func (h *AppointmentHandler) ShowCreateAppointment(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if user.Role != models.RoleStudent {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, services.ErrOnlyStudentsCanBook.Error())
		return c.Redirect("/appointments", fiber.StatusFound)
	}

	facultyMembers, err := h.users.GetFacultyMembers(c.UserContext())
	if err != nil {
		configslog.Log.Error("Portal - ShowCreateAppointment: öğretim üyeleri alınamadı", zap.Error(err))
		facultyMembers = []models.User{}
	}

	return renderer.Render(c, "portal/new_appointment", "layouts/main", fiber.Map{
		"Title":          "Yeni Randevu",
		"FacultyMembers": facultyMembers,
	})
}

// CreateAppointment randevu formunu işler. Başarılı olduğunda scheduled
// durumda bir randevu ve ona bağlı bir bildirim kaydı oluşur.
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	facultyID, _ := strconv.ParseUint(c.FormValue("faculty_id"), 10, 32)
	input := services.CreateAppointmentInput{
		FacultyID: uint(facultyID),
		Date:      c.FormValue("appointment_date"),
		StartTime: c.FormValue("start_time"),
		EndTime:   c.FormValue("end_time"),
		Purpose:   c.FormValue("purpose"),
	}

	if _, err := h.appointments.CreateAppointment(c.UserContext(), user, input); err != nil {
		if errors.Is(err, services.ErrOnlyStudentsCanBook) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, err.Error())
			return c.Redirect("/appointments", fiber.StatusFound)
		}
		configslog.Log.Error("Portal - CreateAppointment: oluşturma hatası", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Randevu oluşturulamadı.")
		return c.Redirect("/appointments/new", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu oluşturuldu.")
	return c.Redirect("/appointments", fiber.StatusFound)
}

// CancelAppointment randevuyu iptal eder. Öğrenci ve öğretim üyesi yalnızca
// kendi randevusunu, yönetici herhangi bir randevuyu iptal edebilir.
func (h *AppointmentHandler) CancelAppointment(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu ID.")
		return c.Redirect("/appointments", fiber.StatusFound)
	}

	if err := h.appointments.CancelAppointment(c.UserContext(), user, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound),
			errors.Is(err, services.ErrAppointmentForbidden):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		default:
			configslog.Log.Error("Portal - CancelAppointment: iptal hatası",
				zap.Uint("userID", user.ID), zap.Int("appointmentID", id), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Randevu iptal edilemedi.")
		}
		return c.Redirect("/appointments", fiber.StatusFound)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashInfoKey, "Randevu iptal edildi.")
	return c.Redirect("/appointments", fiber.StatusFound)
}
