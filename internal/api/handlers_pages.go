package api

import (
	"github.com/avelarde/avance/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"backend":  handler.gateway.Backend().String(),
		"writable": handler.gateway.Writable(),
	})
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Error":      flash.Error,
		"LoginEmail": flash.LoginEmail,
	})
}

// ShowDashboard renders the role-scoped landing page: administrators get
// totals and the pending-approval queue, employees their own workload.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	flash := handler.popFlashCookie(c)

	if identity.IsAdministrator() {
		employees := handler.employees.List()
		activeCount := 0
		for _, employee := range employees {
			if employee.Active {
				activeCount++
			}
		}
		return handler.render(c, "dashboard_admin", fiber.Map{
			"Error":          flash.Error,
			"Success":        flash.Success,
			"EmployeeCount":  len(employees),
			"ActiveCount":    activeCount,
			"ContractCount":  len(handler.contracts.List()),
			"PendingReports": handler.reports.ListPending(),
		})
	}

	contracts := handler.contracts.ListByEmployee(identity.ID)
	activityCount := 0
	for _, contract := range contracts {
		activityCount += len(handler.activities.ListByContract(contract.ID))
	}
	return handler.render(c, "dashboard_employee", fiber.Map{
		"Error":         flash.Error,
		"Success":       flash.Success,
		"Contracts":     contracts,
		"ActivityCount": activityCount,
		"Reports":       handler.reports.ListByEmployee(identity.ID),
		"Notifications": handler.notifications.ListByEmployee(identity.ID),
	})
}

func employeeChoices(employees []models.Employee) []models.Employee {
	active := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		if employee.Active {
			active = append(active, employee)
		}
	}
	return active
}
