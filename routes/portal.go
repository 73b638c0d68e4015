package routes

import (
	"github.com/gofiber/fiber/v2"

	portal_handlers "unirandevu.app/handlers/portal"
	"unirandevu.app/middlewares"
)

// registerPortalRoutes oturum gerektiren sayfaları tanımlar. Oturum şartı
// rota başına AuthMiddleware ile uygulanır; rol kısıtları
// (öğrenci/öğretim üyesi/yönetici) servis katmanında kontrol edilir.
func registerPortalRoutes(app *fiber.App) {
	dashboardHandler := portal_handlers.NewDashboardHandler()
	appointmentHandler := portal_handlers.NewAppointmentHandler()
	availabilityHandler := portal_handlers.NewAvailabilityHandler()
	departmentHandler := portal_handlers.NewDepartmentHandler()

	auth := middlewares.AuthMiddleware

	// --- Dashboard ---
	app.Get("/dashboard", auth, dashboardHandler.HomePage)

	// --- Randevular ---
	app.Get("/appointments", auth, appointmentHandler.ListAppointments)
	app.Get("/appointments/new", auth, appointmentHandler.ShowCreateAppointment)
	app.Post("/appointments/new", auth, appointmentHandler.CreateAppointment)
	app.Get("/appointments/cancel/:id", auth, appointmentHandler.CancelAppointment)

	// --- Müsaitlik (öğretim üyesi) ---
	app.Get("/availability", auth, availabilityHandler.ListAvailability)
	app.Post("/availability", auth, availabilityHandler.AddAvailability)

	// --- Bölümler (yönetici) ---
	app.Get("/departments", auth, departmentHandler.ListDepartments)
	app.Post("/departments", auth, departmentHandler.CreateDepartment)
}
