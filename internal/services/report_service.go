package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

type ReportInput struct {
	EmployeeID  uint
	ActivityID  uint
	Actions     string
	Comments    string
	Percentage  int
	Deliverable string
}

type ReportService struct {
	gateway TableGateway
}

func NewReportService(gateway TableGateway) *ReportService {
	return &ReportService{gateway: gateway}
}

func (service *ReportService) ListByEmployee(employeeID uint) []models.Report {
	return service.list(map[string]any{"id_empleado": employeeID})
}

func (service *ReportService) ListByActivity(activityID uint) []models.Report {
	return service.list(map[string]any{"id_actividad": activityID})
}

func (service *ReportService) ListPending() []models.Report {
	return service.list(map[string]any{"estado": models.ReportPending})
}

func (service *ReportService) FindByID(reportID uint) (models.Report, error) {
	rows := service.gateway.Fetch(store.TableReports, map[string]any{"id_reporte": reportID})
	if len(rows) == 0 {
		return models.Report{}, ErrNotFound
	}
	return reportFromRow(rows[0]), nil
}

// Create logs progress on an activity. The activity must belong to one of
// the reporting employee's contracts; reports start in the pending state.
func (service *ReportService) Create(input ReportInput) error {
	if err := service.validateReportInput(input); err != nil {
		return err
	}

	record := map[string]any{
		"id_empleado":         input.EmployeeID,
		"id_actividad":        input.ActivityID,
		"fecha":               time.Now(),
		"acciones_realizadas": strings.TrimSpace(input.Actions),
		"comentarios":         strings.TrimSpace(input.Comments),
		"porcentaje":          input.Percentage,
		"entregable":          strings.TrimSpace(input.Deliverable),
		"estado":              models.ReportPending,
	}
	if !service.gateway.Insert(store.TableReports, record) {
		return ErrWriteFailed
	}
	return nil
}

// SetState moves a report through the approval flow (pending, approved,
// rejected).
func (service *ReportService) SetState(reportID uint, state int) error {
	if !models.ValidReportState(state) {
		return fmt.Errorf("%w: unknown report state %d", ErrInvalidInput, state)
	}
	if _, err := service.FindByID(reportID); err != nil {
		return err
	}
	if !service.gateway.Update(store.TableReports, map[string]any{"estado": state}, map[string]any{"id_reporte": reportID}) {
		return ErrWriteFailed
	}
	return nil
}

func (service *ReportService) list(filters map[string]any) []models.Report {
	rows := service.gateway.Fetch(store.TableReports, filters)
	reports := make([]models.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, reportFromRow(row))
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Date.After(reports[j].Date)
	})
	return reports
}

func (service *ReportService) validateReportInput(input ReportInput) error {
	if !requiredText(input.Actions) {
		return fmt.Errorf("%w: actions taken is required", ErrInvalidInput)
	}
	if !requiredText(input.Deliverable) {
		return fmt.Errorf("%w: deliverable reference is required", ErrInvalidInput)
	}
	if !percentageInRange(input.Percentage) {
		return fmt.Errorf("%w: percentage out of range", ErrInvalidInput)
	}

	activities := service.gateway.Fetch(store.TableActivities, map[string]any{"id_actividad": input.ActivityID})
	if len(activities) == 0 {
		return fmt.Errorf("%w: activity %d does not exist", ErrInvalidInput, input.ActivityID)
	}
	activity := activityFromRow(activities[0])

	contracts := service.gateway.Fetch(store.TableContracts, map[string]any{
		"id_contrato": activity.ContractID,
		"id_empleado": input.EmployeeID,
	})
	if len(contracts) == 0 {
		return fmt.Errorf("%w: activity %d is not on a contract owned by employee %d", ErrInvalidInput, input.ActivityID, input.EmployeeID)
	}
	return nil
}
