package models

import "time"

const (
	ReportPending  = 0
	ReportApproved = 1
	ReportRejected = 2
)

// Report maps the legacy Reportes table.
type Report struct {
	ID          uint      `gorm:"column:id_reporte;primaryKey"`
	EmployeeID  uint      `gorm:"column:id_empleado;not null"`
	ActivityID  uint      `gorm:"column:id_actividad;not null"`
	Date        time.Time `gorm:"column:fecha;not null"`
	Actions     string    `gorm:"column:acciones_realizadas;not null"`
	Comments    string    `gorm:"column:comentarios"`
	Percentage  int       `gorm:"column:porcentaje"`
	Deliverable string    `gorm:"column:entregable;not null"`
	State       int       `gorm:"column:estado;not null;default:0"`
}

func (Report) TableName() string { return "Reportes" }

func ValidReportState(state int) bool {
	return state == ReportPending || state == ReportApproved || state == ReportRejected
}
