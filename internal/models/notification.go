package models

import "time"

// Notification maps the legacy Notificaciones table. Rows are created by
// administrator actions; the read flag is the only field that mutates after
// that.
type Notification struct {
	ID         uint      `gorm:"column:id_notificacion;primaryKey"`
	EmployeeID uint      `gorm:"column:id_empleado;not null"`
	Message    string    `gorm:"column:mensaje;not null"`
	SentAt     time.Time `gorm:"column:fecha_envio;not null"`
	Read       bool      `gorm:"column:leido;not null;default:false"`
}

func (Notification) TableName() string { return "Notificaciones" }
