package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)

	app.Get("/employees", handler.AuthRequired, handler.AdminOnly, handler.ShowEmployeesPage)
	app.Get("/contracts", handler.AuthRequired, handler.AdminOnly, handler.ShowContractsPage)
	app.Get("/contracts/:contract_id/activities", handler.AuthRequired, handler.AdminOnly, handler.ShowActivitiesPage)
	app.Get("/reports", handler.AuthRequired, handler.AdminOnly, handler.ShowReportsPage)
	app.Get("/notifications", handler.AuthRequired, handler.AdminOnly, handler.ShowNotificationsPage)

	app.Get("/my/activities", handler.AuthRequired, handler.ShowMyActivitiesPage)
	app.Get("/my/reports", handler.AuthRequired, handler.ShowMyReportsPage)
	app.Get("/my/notifications", handler.AuthRequired, handler.ShowMyNotificationsPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)

	employees := admin.Group("/employees")
	employees.Post("", handler.CreateEmployee)
	employees.Post("/:id", handler.UpdateEmployee)
	employees.Post("/:id/deactivate", handler.DeactivateEmployee)
	employees.Post("/:id/activate", handler.ActivateEmployee)
	employees.Delete("/:id", handler.DeleteEmployee)
	// Browser forms cannot send DELETE; keep a POST alias for them.
	employees.Post("/:id/delete", handler.DeleteEmployee)

	contracts := admin.Group("/contracts")
	contracts.Post("", handler.CreateContract)
	contracts.Post("/:id", handler.UpdateContract)
	contracts.Delete("/:id", handler.DeleteContract)
	contracts.Post("/:id/delete", handler.DeleteContract)

	activities := admin.Group("/activities")
	activities.Post("", handler.CreateActivity)
	activities.Post("/:id", handler.UpdateActivity)
	activities.Delete("/:id", handler.DeleteActivity)
	activities.Post("/:id/delete", handler.DeleteActivity)

	reports := admin.Group("/reports")
	reports.Post("/:id/state", handler.SetReportState)

	admin.Post("/notifications", handler.SendNotification)

	my := api.Group("/my", handler.AuthRequired)
	my.Post("/reports", handler.CreateMyReport)
	my.Post("/notifications/:id/read", handler.MarkNotificationRead)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
