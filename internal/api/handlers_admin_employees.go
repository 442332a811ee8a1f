package api

import (
	"errors"

	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowEmployeesPage(c *fiber.Ctx) error {
	flash := handler.popFlashCookie(c)
	return handler.render(c, "employees", fiber.Map{
		"Error":     flash.Error,
		"Success":   flash.Success,
		"Employees": handler.employees.List(),
		"ViewState": parseViewState(c),
	})
}

func (handler *Handler) CreateEmployee(c *fiber.Ctx) error {
	input := employeeInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/employees", fiber.StatusBadRequest, "invalid input")
	}

	err := handler.employees.Create(services.EmployeeInput{
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		Password: input.Password,
	})
	if err != nil {
		return handler.respondServiceError(c, "/employees", err)
	}
	return handler.respondFormSuccess(c, "/employees", "employee created")
}

func (handler *Handler) UpdateEmployee(c *fiber.Ctx) error {
	employeeID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/employees", fiber.StatusBadRequest, "invalid employee id")
	}
	input := employeeInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondFormError(c, "/employees", fiber.StatusBadRequest, "invalid input")
	}

	err := handler.employees.Update(employeeID, services.EmployeeInput{
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		Password: input.Password,
	})
	if err != nil {
		return handler.respondServiceError(c, "/employees", err)
	}
	return handler.respondFormSuccess(c, "/employees", "employee updated")
}

func (handler *Handler) DeactivateEmployee(c *fiber.Ctx) error {
	employeeID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/employees", fiber.StatusBadRequest, "invalid employee id")
	}
	if err := handler.employees.Deactivate(employeeID); err != nil {
		return handler.respondServiceError(c, "/employees", err)
	}
	return handler.respondFormSuccess(c, "/employees", "employee deactivated")
}

func (handler *Handler) ActivateEmployee(c *fiber.Ctx) error {
	employeeID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/employees", fiber.StatusBadRequest, "invalid employee id")
	}
	if err := handler.employees.Activate(employeeID); err != nil {
		return handler.respondServiceError(c, "/employees", err)
	}
	return handler.respondFormSuccess(c, "/employees", "employee activated")
}

func (handler *Handler) DeleteEmployee(c *fiber.Ctx) error {
	employeeID, ok := parseRowID(c.Params("id"))
	if !ok {
		return handler.respondFormError(c, "/employees", fiber.StatusBadRequest, "invalid employee id")
	}
	if err := handler.employees.Delete(employeeID); err != nil {
		return handler.respondServiceError(c, "/employees", err)
	}
	return handler.respondFormSuccess(c, "/employees", "employee deleted")
}

// respondServiceError translates service failures into the right status and
// a user-facing message; the page re-renders with the message inline.
func (handler *Handler) respondServiceError(c *fiber.Ctx, page string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return handler.respondFormError(c, page, fiber.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrEmailTaken):
		return handler.respondFormError(c, page, fiber.StatusConflict, "email already registered")
	case errors.Is(err, services.ErrHasDependents):
		return handler.respondFormError(c, page, fiber.StatusConflict, "cannot delete: dependent records exist")
	case errors.Is(err, services.ErrInvalidInput):
		return handler.respondFormError(c, page, fiber.StatusBadRequest, err.Error())
	default:
		return handler.respondFormError(c, page, fiber.StatusInternalServerError, "storage backend rejected the change")
	}
}

func (handler *Handler) respondFormError(c *fiber.Ctx, page string, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message})
	return c.Redirect(formRedirectTarget(c, page), fiber.StatusSeeOther)
}

func (handler *Handler) respondFormSuccess(c *fiber.Ctx, page string, message string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{Success: message})
	return c.Redirect(formRedirectTarget(c, page), fiber.StatusSeeOther)
}
