package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

type ContractInput struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	EmployeeID  uint
	ValidatorID *uint
}

type ContractService struct {
	gateway TableGateway
}

func NewContractService(gateway TableGateway) *ContractService {
	return &ContractService{gateway: gateway}
}

func (service *ContractService) List() []models.Contract {
	rows := service.gateway.Fetch(store.TableContracts, nil)
	contracts := make([]models.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, contractFromRow(row))
	}
	return contracts
}

// ListByEmployee returns the contracts owned by one employee; it drives
// which activities that employee sees.
func (service *ContractService) ListByEmployee(employeeID uint) []models.Contract {
	rows := service.gateway.Fetch(store.TableContracts, map[string]any{"id_empleado": employeeID})
	contracts := make([]models.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, contractFromRow(row))
	}
	return contracts
}

func (service *ContractService) FindByID(contractID uint) (models.Contract, error) {
	rows := service.gateway.Fetch(store.TableContracts, map[string]any{"id_contrato": contractID})
	if len(rows) == 0 {
		return models.Contract{}, ErrNotFound
	}
	return contractFromRow(rows[0]), nil
}

func (service *ContractService) Create(input ContractInput) error {
	if err := service.validateContractInput(input); err != nil {
		return err
	}
	if !service.gateway.Insert(store.TableContracts, contractRecord(input)) {
		return ErrWriteFailed
	}
	return nil
}

func (service *ContractService) Update(contractID uint, input ContractInput) error {
	if err := service.validateContractInput(input); err != nil {
		return err
	}
	if _, err := service.FindByID(contractID); err != nil {
		return err
	}
	if !service.gateway.Update(store.TableContracts, contractRecord(input), map[string]any{"id_contrato": contractID}) {
		return ErrWriteFailed
	}
	return nil
}

// Delete refuses contracts that still have activities; dependent rows must
// go first so no orphans are created.
func (service *ContractService) Delete(contractID uint) error {
	if _, err := service.FindByID(contractID); err != nil {
		return err
	}
	if activities := service.gateway.Fetch(store.TableActivities, map[string]any{"id_contrato": contractID}); len(activities) > 0 {
		log.Printf("contracts: refusing to delete %d, %d dependent activities", contractID, len(activities))
		return ErrHasDependents
	}
	if !service.gateway.Delete(store.TableContracts, map[string]any{"id_contrato": contractID}) {
		return ErrWriteFailed
	}
	return nil
}

func contractRecord(input ContractInput) map[string]any {
	record := map[string]any{
		"nombre_contrato": strings.TrimSpace(input.Name),
		"fecha_inicio":    input.StartDate,
		"fecha_fin":       input.EndDate,
		"id_empleado":     input.EmployeeID,
	}
	if input.ValidatorID != nil {
		record["id_validador"] = *input.ValidatorID
	}
	return record
}

func (service *ContractService) validateContractInput(input ContractInput) error {
	if !requiredText(input.Name) {
		return fmt.Errorf("%w: contract name is required", ErrInvalidInput)
	}
	if !validDateRange(input.StartDate, input.EndDate) {
		return fmt.Errorf("%w: invalid contract dates", ErrInvalidInput)
	}
	if exists := service.gateway.Fetch(store.TableEmployees, map[string]any{"id_empleado": input.EmployeeID}); len(exists) == 0 {
		return fmt.Errorf("%w: owning employee %d does not exist", ErrInvalidInput, input.EmployeeID)
	}
	if input.ValidatorID != nil {
		if exists := service.gateway.Fetch(store.TableEmployees, map[string]any{"id_empleado": *input.ValidatorID}); len(exists) == 0 {
			return fmt.Errorf("%w: validator employee %d does not exist", ErrInvalidInput, *input.ValidatorID)
		}
	}
	return nil
}
