package services

import (
	"testing"

	"github.com/avelarde/avance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCreateAndListByContract(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewActivityService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	contractID := seedContract(t, gateway, "Obra Norte", anaID)
	otherID := seedContract(t, gateway, "Obra Sur", anaID)

	seedActivity(t, gateway, contractID, 1, "Site survey")
	seedActivity(t, gateway, contractID, 2, "Foundations")
	seedActivity(t, gateway, otherID, 1, "Permits")

	activities := service.ListByContract(contractID)
	require.Len(t, activities, 2)
	for _, activity := range activities {
		assert.Equal(t, contractID, activity.ContractID)
	}
}

func TestActivityCreateValidation(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewActivityService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	contractID := seedContract(t, gateway, "Obra Norte", anaID)

	assert.ErrorIs(t, service.Create(ActivityInput{
		Sequence: 1, ContractID: contractID, Target: 100,
	}), ErrInvalidInput)

	assert.ErrorIs(t, service.Create(ActivityInput{
		Sequence: 1, Description: "Survey", ContractID: contractID, Target: 101,
	}), ErrInvalidInput)

	assert.ErrorIs(t, service.Create(ActivityInput{
		Sequence: 1, Description: "Survey", ContractID: 999, Target: 50,
	}), ErrInvalidInput)
}

func TestActivityUpdate(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewActivityService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	contractID := seedContract(t, gateway, "Obra Norte", anaID)
	activityID := seedActivity(t, gateway, contractID, 1, "Site survey")

	require.NoError(t, service.Update(activityID, ActivityInput{
		Sequence:    3,
		Description: "Extended site survey",
		ContractID:  contractID,
		Target:      80,
	}))

	activity, err := service.FindByID(activityID)
	require.NoError(t, err)
	assert.Equal(t, 3, activity.Sequence)
	assert.Equal(t, "Extended site survey", activity.Description)
	assert.Equal(t, 80, activity.Target)
}

func TestActivityDeleteRefusedWhileReportsExist(t *testing.T) {
	gateway := newTestGateway(t)
	service := NewActivityService(gateway)
	anaID := seedEmployee(t, gateway, "Ana", models.RoleEmployee, "x")
	contractID := seedContract(t, gateway, "Obra Norte", anaID)
	activityID := seedActivity(t, gateway, contractID, 1, "Site survey")

	require.NoError(t, NewReportService(gateway).Create(ReportInput{
		EmployeeID:  anaID,
		ActivityID:  activityID,
		Actions:     "Walked the site",
		Percentage:  20,
		Deliverable: "survey.pdf",
	}))

	assert.ErrorIs(t, service.Delete(activityID), ErrHasDependents)
	_, err := service.FindByID(activityID)
	assert.NoError(t, err)
}
