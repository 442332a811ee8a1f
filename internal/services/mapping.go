package services

import (
	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

func employeeFromRow(row store.Row) models.Employee {
	return models.Employee{
		ID:           uint(row.Int("id_empleado")),
		Name:         row.String("nombre"),
		Email:        row.String("correo"),
		Role:         row.String("rol"),
		Active:       row.Bool("activo"),
		PasswordHash: row.String("password_hash"),
	}
}

func contractFromRow(row store.Row) models.Contract {
	contract := models.Contract{
		ID:         uint(row.Int("id_contrato")),
		Name:       row.String("nombre_contrato"),
		StartDate:  row.Time("fecha_inicio"),
		EndDate:    row.Time("fecha_fin"),
		EmployeeID: uint(row.Int("id_empleado")),
	}
	if validator := row.Int("id_validador"); validator > 0 {
		validatorID := uint(validator)
		contract.ValidatorID = &validatorID
	}
	return contract
}

func activityFromRow(row store.Row) models.Activity {
	return models.Activity{
		ID:          uint(row.Int("id_actividad")),
		Sequence:    row.Int("nro"),
		Description: row.String("descripcion"),
		ContractID:  uint(row.Int("id_contrato")),
		Target:      row.Int("porcentaje"),
	}
}

func reportFromRow(row store.Row) models.Report {
	return models.Report{
		ID:          uint(row.Int("id_reporte")),
		EmployeeID:  uint(row.Int("id_empleado")),
		ActivityID:  uint(row.Int("id_actividad")),
		Date:        row.Time("fecha"),
		Actions:     row.String("acciones_realizadas"),
		Comments:    row.String("comentarios"),
		Percentage:  row.Int("porcentaje"),
		Deliverable: row.String("entregable"),
		State:       row.Int("estado"),
	}
}

func notificationFromRow(row store.Row) models.Notification {
	return models.Notification{
		ID:         uint(row.Int("id_notificacion")),
		EmployeeID: uint(row.Int("id_empleado")),
		Message:    row.String("mensaje"),
		SentAt:     row.Time("fecha_envio"),
		Read:       row.Bool("leido"),
	}
}
