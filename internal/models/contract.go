package models

import "time"

// Contract maps the legacy Contratos table.
type Contract struct {
	ID          uint      `gorm:"column:id_contrato;primaryKey"`
	Name        string    `gorm:"column:nombre_contrato;not null"`
	StartDate   time.Time `gorm:"column:fecha_inicio"`
	EndDate     time.Time `gorm:"column:fecha_fin"`
	EmployeeID  uint      `gorm:"column:id_empleado;not null"`
	ValidatorID *uint     `gorm:"column:id_validador"`
}

func (Contract) TableName() string { return "Contratos" }
