package models

const (
	RoleAdministrator = "administrador"
	RoleEmployee      = "empleado"
)

// Employee maps the legacy Empleados table. Column names are kept as the
// existing SQL Server / SQLite schemas define them.
type Employee struct {
	ID           uint   `gorm:"column:id_empleado;primaryKey"`
	Name         string `gorm:"column:nombre"`
	Email        string `gorm:"column:correo;uniqueIndex;not null"`
	Role         string `gorm:"column:rol;not null;default:empleado"`
	Active       bool   `gorm:"column:activo;not null;default:true"`
	PasswordHash string `gorm:"column:password_hash;not null"`
}

func (Employee) TableName() string { return "Empleados" }

func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleEmployee
}
