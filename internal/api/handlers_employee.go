package api

import (
	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
)

type contractActivities struct {
	Contract   models.Contract
	Activities []models.Activity
}

// ShowMyActivitiesPage lists the activities on every contract the signed-in
// employee owns, with the report form inline.
func (handler *Handler) ShowMyActivitiesPage(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	contracts := handler.contracts.ListByEmployee(identity.ID)
	groups := make([]contractActivities, 0, len(contracts))
	for _, contract := range contracts {
		groups = append(groups, contractActivities{
			Contract:   contract,
			Activities: handler.activities.ListByContract(contract.ID),
		})
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "my_activities", fiber.Map{
		"Error":   flash.Error,
		"Success": flash.Success,
		"Groups":  groups,
	})
}

func (handler *Handler) ShowMyReportsPage(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "my_reports", fiber.Map{
		"Error":   flash.Error,
		"Success": flash.Success,
		"Reports": handler.reports.ListByEmployee(identity.ID),
	})
}

// CreateMyReport logs progress on one of the caller's activities. The
// employee id comes from the session, never the request body.
func (handler *Handler) CreateMyReport(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	input := reportInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/my/activities", fiber.StatusBadRequest, "invalid input")
	}

	err := handler.reports.Create(services.ReportInput{
		EmployeeID:  identity.ID,
		ActivityID:  input.ActivityID,
		Actions:     input.Actions,
		Comments:    input.Comments,
		Percentage:  input.Percentage,
		Deliverable: input.Deliverable,
	})
	if err != nil {
		return handler.respondServiceError(c, "/my/activities", err)
	}
	return handler.respondFormSuccess(c, "/my/reports", "report submitted")
}

func (handler *Handler) ShowMyNotificationsPage(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "my_notifications", fiber.Map{
		"Error":         flash.Error,
		"Success":       flash.Success,
		"Notifications": handler.notifications.ListByEmployee(identity.ID),
	})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	notificationID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/my/notifications", fiber.StatusBadRequest, "invalid notification id")
	}

	if err := handler.notifications.MarkRead(notificationID, identity.ID); err != nil {
		return handler.respondServiceError(c, "/my/notifications", err)
	}
	return handler.respondFormSuccess(c, "/my/notifications", "notification marked read")
}
