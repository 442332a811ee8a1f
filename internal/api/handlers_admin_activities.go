package api

import (
	"fmt"

	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ShowActivitiesPage lists the activities of one contract, picked in the path.
func (handler *Handler) ShowActivitiesPage(c *fiber.Ctx) error {
	contractID, ok := parseRowID(c.Params("contract_id"))
	if !ok {
		return c.Redirect("/contracts", fiber.StatusSeeOther)
	}
	contract, err := handler.contracts.FindByID(contractID)
	if err != nil {
		handler.setFlashCookie(c, FlashPayload{Error: "contract not found"})
		return c.Redirect("/contracts", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "activities", fiber.Map{
		"Error":      flash.Error,
		"Success":    flash.Success,
		"Contract":   contract,
		"Activities": handler.activities.ListByContract(contractID),
		"ViewState":  parseViewState(c),
	})
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	input := activityInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, "invalid input")
	}
	page := activitiesPagePath(input.ContractID)

	err := handler.activities.Create(services.ActivityInput{
		Sequence:    input.Sequence,
		Description: input.Description,
		ContractID:  input.ContractID,
		Target:      input.Target,
	})
	if err != nil {
		return handler.respondServiceError(c, page, err)
	}
	return handler.respondFormSuccess(c, page, "activity created")
}

func (handler *Handler) UpdateActivity(c *fiber.Ctx) error {
	activityID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, "invalid activity id")
	}
	input := activityInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, "invalid input")
	}
	page := activitiesPagePath(input.ContractID)

	err := handler.activities.Update(activityID, services.ActivityInput{
		Sequence:    input.Sequence,
		Description: input.Description,
		ContractID:  input.ContractID,
		Target:      input.Target,
	})
	if err != nil {
		return handler.respondServiceError(c, page, err)
	}
	return handler.respondFormSuccess(c, page, "activity updated")
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	activityID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, "invalid activity id")
	}

	page := "/contracts"
	if activity, err := handler.activities.FindByID(activityID); err == nil {
		page = activitiesPagePath(activity.ContractID)
	}

	if err := handler.activities.Delete(activityID); err != nil {
		return handler.respondServiceError(c, page, err)
	}
	return handler.respondFormSuccess(c, page, "activity deleted")
}

func activitiesPagePath(contractID uint) string {
	return fmt.Sprintf("/contracts/%d/activities", contractID)
}
