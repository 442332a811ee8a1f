package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowReportsPage(c *fiber.Ctx) error {
	flash := handler.popFlashCookie(c)
	return handler.render(c, "reports", fiber.Map{
		"Error":   flash.Error,
		"Success": flash.Success,
		"Reports": handler.reports.ListPending(),
	})
}

// SetReportState moves one report through the approval flow.
func (handler *Handler) SetReportState(c *fiber.Ctx) error {
	reportID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/reports", fiber.StatusBadRequest, "invalid report id")
	}
	input := reportStateInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/reports", fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.reports.SetState(reportID, input.State); err != nil {
		return handler.respondServiceError(c, "/reports", err)
	}
	return handler.respondFormSuccess(c, "/reports", "report state updated")
}
