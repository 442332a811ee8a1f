package services

import (
	"testing"
	"time"

	"github.com/avelarde/avance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractCreateAndListByEmployee(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewContractService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	brunoID := seedEmployee(t, gateway, "Bruno", models.RoleEmployee, "x")

	seedContract(t, gateway, "Obra Norte", anaID)
	seedContract(t, gateway, "Obra Sur", brunoID)

	contracts := service.ListByEmployee(anaID)
	require.Len(t, contracts, 1)
	assert.Equal(t, "Obra Norte", contracts[0].Name)
	assert.Equal(t, anaID, contracts[0].EmployeeID)
	assert.Equal(t, 2024, contracts[0].StartDate.Year())

	assert.Len(t, service.List(), 2)
}

func TestContractCreateWithValidator(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewContractService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	validatorID := seedEmployee(t, gateway, "Vera", models.RoleAdministrator, "x")

	require.NoError(t, service.Create(ContractInput{
		Name:        "Obra Este",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		EmployeeID:  anaID,
		ValidatorID: &validatorID,
	}))

	contracts := service.ListByEmployee(anaID)
	require.Len(t, contracts, 1)
	require.NotNil(t, contracts[0].ValidatorID)
	assert.Equal(t, validatorID, *contracts[0].ValidatorID)
}

func TestContractCreateValidation(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewContractService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, service.Create(ContractInput{
		StartDate: start, EndDate: end, EmployeeID: anaID,
	}), ErrInvalidInput)

	// End before start.
	assert.ErrorIs(t, service.Create(ContractInput{
		Name: "Obra", StartDate: end, EndDate: start, EmployeeID: anaID,
	}), ErrInvalidInput)

	// Owner must exist.
	assert.ErrorIs(t, service.Create(ContractInput{
		Name: "Obra", StartDate: start, EndDate: end, EmployeeID: 999,
	}), ErrInvalidInput)
}

func TestContractUpdate(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewContractService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	contractID := seedContract(t, gateway, "Obra Norte", anaID)

	require.NoError(t, service.Update(contractID, ContractInput{
		Name:       "Obra Norte Fase 2",
		StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		EmployeeID: anaID,
	}))

	contract, err := service.FindByID(contractID)
	require.NoError(t, err)
	assert.Equal(t, "Obra Norte Fase 2", contract.Name)
}

func TestContractDeleteRefusedWhileActivitiesExist(t *testing.T) {
	gateway := newTestGateway(t)
	contracts := NewContractService(gateway)
	activities := NewActivityService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	contractID := seedContract(t, gateway, "Obra Norte", anaID)
	surveyID := seedActivity(t, gateway, contractID, 1, "Site survey")
	foundationsID := seedActivity(t, gateway, contractID, 2, "Foundations")

	assert.ErrorIs(t, contracts.Delete(contractID), ErrHasDependents)
	_, err := contracts.FindByID(contractID)
	assert.NoError(t, err)
	assert.Len(t, activities.ListByContract(contractID), 2)

	// Removing the dependent activities unblocks the delete.
	require.NoError(t, activities.Delete(surveyID))
	require.NoError(t, activities.Delete(foundationsID))
	require.NoError(t, contracts.Delete(contractID))
	_, err = contracts.FindByID(contractID)
	assert.ErrorIs(t, err, ErrNotFound)
}
