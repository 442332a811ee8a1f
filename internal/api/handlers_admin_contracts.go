package api

import (
	"time"

	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
)

const contractDateLayout = "2006-01-02"

func (handler *Handler) ShowContractsPage(c *fiber.Ctx) error {
	flash := handler.popFlashCookie(c)
	return handler.render(c, "contracts", fiber.Map{
		"Error":     flash.Error,
		"Success":   flash.Success,
		"Contracts": handler.contracts.List(),
		"Employees": employeeChoices(handler.employees.List()),
		"ViewState": parseViewState(c),
	})
}

func (handler *Handler) CreateContract(c *fiber.Ctx) error {
	input, message := parseContractInput(c)
	if message != "" {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, message)
	}
	if err := handler.contracts.Create(input); err != nil {
		return handler.respondServiceError(c, "/contracts", err)
	}
	return handler.respondFormSuccess(c, "/contracts", "contract created")
}

func (handler *Handler) UpdateContract(c *fiber.Ctx) error {
	contractID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, "invalid contract id")
	}
	input, message := parseContractInput(c)
	if message != "" {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, message)
	}
	if err := handler.contracts.Update(contractID, input); err != nil {
		return handler.respondServiceError(c, "/contracts", err)
	}
	return handler.respondFormSuccess(c, "/contracts", "contract updated")
}

func (handler *Handler) DeleteContract(c *fiber.Ctx) error {
	contractID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/contracts", fiber.StatusBadRequest, "invalid contract id")
	}
	if err := handler.contracts.Delete(contractID); err != nil {
		return handler.respondServiceError(c, "/contracts", err)
	}
	return handler.respondFormSuccess(c, "/contracts", "contract deleted")
}

func parseContractInput(c *fiber.Ctx) (services.ContractInput, string) {
	raw := contractInput{}
	if err := c.BodyParser(&raw); err != nil {
		return services.ContractInput{}, "invalid input"
	}

	startDate, err := time.Parse(contractDateLayout, raw.StartDate)
	if err != nil {
		return services.ContractInput{}, "invalid start date"
	}
	endDate, err := time.Parse(contractDateLayout, raw.EndDate)
	if err != nil {
		return services.ContractInput{}, "invalid end date"
	}

	input := services.ContractInput{
		Name:       raw.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		EmployeeID: raw.EmployeeID,
	}
	if raw.ValidatorID > 0 {
		validatorID := raw.ValidatorID
		input.ValidatorID = &validatorID
	}
	return input, ""
}
