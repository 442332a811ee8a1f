package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowNotificationsPage(c *fiber.Ctx) error {
	flash := handler.popFlashCookie(c)
	return handler.render(c, "notifications", fiber.Map{
		"Error":     flash.Error,
		"Success":   flash.Success,
		"Employees": employeeChoices(handler.employees.List()),
	})
}

func (handler *Handler) SendNotification(c *fiber.Ctx) error {
	input := notificationInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/notifications", fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.notifications.Send(input.EmployeeID, input.Message); err != nil {
		return handler.respondServiceError(c, "/notifications", err)
	}
	return handler.respondFormSuccess(c, "/notifications", "notification sent")
}
