package models

// Activity maps the legacy Actividades table. Sequence is the per-contract
// ordering number the planners assign by hand.
type Activity struct {
	ID          uint   `gorm:"column:id_actividad;primaryKey"`
	Sequence    int    `gorm:"column:nro"`
	Description string `gorm:"column:descripcion;not null"`
	ContractID  uint   `gorm:"column:id_contrato;not null"`
	Target      int    `gorm:"column:porcentaje"`
}

func (Activity) TableName() string { return "Actividades" }
