package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

type ActivityInput struct {
	Sequence    int
	Description string
	ContractID  uint
	Target      int
}

type ActivityService struct {
	gateway TableGateway
}

func NewActivityService(gateway TableGateway) *ActivityService {
	return &ActivityService{gateway: gateway}
}

func (service *ActivityService) ListByContract(contractID uint) []models.Activity {
	rows := service.gateway.Fetch(store.TableActivities, map[string]any{"id_contrato": contractID})
	activities := make([]models.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, activityFromRow(row))
	}
	return activities
}

func (service *ActivityService) FindByID(activityID uint) (models.Activity, error) {
	rows := service.gateway.Fetch(store.TableActivities, map[string]any{"id_actividad": activityID})
	if len(rows) == 0 {
		return models.Activity{}, ErrNotFound
	}
	return activityFromRow(rows[0]), nil
}

func (service *ActivityService) Create(input ActivityInput) error {
	if err := service.validateActivityInput(input); err != nil {
		return err
	}
	record := map[string]any{
		"nro":         input.Sequence,
		"descripcion": strings.TrimSpace(input.Description),
		"id_contrato": input.ContractID,
		"porcentaje":  input.Target,
	}
	if !service.gateway.Insert(store.TableActivities, record) {
		return ErrWriteFailed
	}
	return nil
}

func (service *ActivityService) Update(activityID uint, input ActivityInput) error {
	if err := service.validateActivityInput(input); err != nil {
		return err
	}
	if _, err := service.FindByID(activityID); err != nil {
		return err
	}
	changes := map[string]any{
		"nro":         input.Sequence,
		"descripcion": strings.TrimSpace(input.Description),
		"id_contrato": input.ContractID,
		"porcentaje":  input.Target,
	}
	if !service.gateway.Update(store.TableActivities, changes, map[string]any{"id_actividad": activityID}) {
		return ErrWriteFailed
	}
	return nil
}

// Delete refuses activities that progress reports still reference.
func (service *ActivityService) Delete(activityID uint) error {
	if _, err := service.FindByID(activityID); err != nil {
		return err
	}
	if reports := service.gateway.Fetch(store.TableReports, map[string]any{"id_actividad": activityID}); len(reports) > 0 {
		log.Printf("activities: refusing to delete %d, %d dependent reports", activityID, len(reports))
		return ErrHasDependents
	}
	if !service.gateway.Delete(store.TableActivities, map[string]any{"id_actividad": activityID}) {
		return ErrWriteFailed
	}
	return nil
}

func (service *ActivityService) validateActivityInput(input ActivityInput) error {
	if !requiredText(input.Description) {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if !percentageInRange(input.Target) {
		return fmt.Errorf("%w: target percentage out of range", ErrInvalidInput)
	}
	if exists := service.gateway.Fetch(store.TableContracts, map[string]any{"id_contrato": input.ContractID}); len(exists) == 0 {
		return fmt.Errorf("%w: contract %d does not exist", ErrInvalidInput, input.ContractID)
	}
	return nil
}
