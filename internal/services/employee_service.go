package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

type EmployeeInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

type EmployeeService struct {
	gateway TableGateway
}

func NewEmployeeService(gateway TableGateway) *EmployeeService {
	return &EmployeeService{gateway: gateway}
}

func (service *EmployeeService) List() []models.Employee {
	rows := service.gateway.Fetch(store.TableEmployees, nil)
	employees := make([]models.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, employeeFromRow(row))
	}
	return employees
}

func (service *EmployeeService) FindByID(employeeID uint) (models.Employee, error) {
	rows := service.gateway.Fetch(store.TableEmployees, map[string]any{"id_empleado": employeeID})
	if len(rows) == 0 {
		return models.Employee{}, ErrNotFound
	}
	return employeeFromRow(rows[0]), nil
}

func (service *EmployeeService) Create(input EmployeeInput) error {
	if err := validateEmployeeInput(input, true); err != nil {
		return err
	}
	if existing := service.gateway.Fetch(store.TableEmployees, map[string]any{"correo": strings.TrimSpace(input.Email)}); len(existing) > 0 {
		return ErrEmailTaken
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	record := map[string]any{
		"nombre":        strings.TrimSpace(input.Name),
		"correo":        strings.TrimSpace(input.Email),
		"rol":           input.Role,
		"activo":        true,
		"password_hash": passwordHash,
	}
	if !service.gateway.Insert(store.TableEmployees, record) {
		return ErrWriteFailed
	}
	return nil
}

// Update changes name, email and role. An empty password leaves the stored
// hash untouched.
func (service *EmployeeService) Update(employeeID uint, input EmployeeInput) error {
	if err := validateEmployeeInput(input, false); err != nil {
		return err
	}
	current, err := service.FindByID(employeeID)
	if err != nil {
		return err
	}

	email := strings.TrimSpace(input.Email)
	if email != current.Email {
		if existing := service.gateway.Fetch(store.TableEmployees, map[string]any{"correo": email}); len(existing) > 0 {
			return ErrEmailTaken
		}
	}

	changes := map[string]any{
		"nombre": strings.TrimSpace(input.Name),
		"correo": email,
		"rol":    input.Role,
	}
	if input.Password != "" {
		passwordHash, err := HashPassword(input.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		changes["password_hash"] = passwordHash
	}

	if !service.gateway.Update(store.TableEmployees, changes, map[string]any{"id_empleado": employeeID}) {
		return ErrWriteFailed
	}
	return nil
}

// Deactivate is the well-behaved removal path: the row stays, sessions and
// logins stop working.
func (service *EmployeeService) Deactivate(employeeID uint) error {
	if _, err := service.FindByID(employeeID); err != nil {
		return err
	}
	if !service.gateway.Update(store.TableEmployees, map[string]any{"activo": false}, map[string]any{"id_empleado": employeeID}) {
		return ErrWriteFailed
	}
	return nil
}

func (service *EmployeeService) Activate(employeeID uint) error {
	if _, err := service.FindByID(employeeID); err != nil {
		return err
	}
	if !service.gateway.Update(store.TableEmployees, map[string]any{"activo": true}, map[string]any{"id_empleado": employeeID}) {
		return ErrWriteFailed
	}
	return nil
}

// Delete removes the row outright. Rows still referenced by contracts,
// reports or notifications are refused so the hard-delete path cannot strand
// children.
func (service *EmployeeService) Delete(employeeID uint) error {
	if _, err := service.FindByID(employeeID); err != nil {
		return err
	}

	condition := map[string]any{"id_empleado": employeeID}
	dependents := []struct {
		table  string
		filter map[string]any
	}{
		{store.TableContracts, condition},
		// Contracts reference employees twice: as owner and as validator.
		{store.TableContracts, map[string]any{"id_validador": employeeID}},
		{store.TableReports, condition},
		{store.TableNotifications, condition},
	}
	for _, dependent := range dependents {
		if rows := service.gateway.Fetch(dependent.table, dependent.filter); len(rows) > 0 {
			log.Printf("employees: refusing to delete %d, %d dependent rows in %s", employeeID, len(rows), dependent.table)
			return ErrHasDependents
		}
	}

	if !service.gateway.Delete(store.TableEmployees, condition) {
		return ErrWriteFailed
	}
	return nil
}

func validateEmployeeInput(input EmployeeInput, requirePassword bool) error {
	if !requiredText(input.Name) {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validEmail(input.Email) {
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	if !models.ValidRole(input.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}
	if requirePassword && !requiredText(input.Password) {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
