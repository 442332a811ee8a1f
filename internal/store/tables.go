package store

// Table describes one logical table the gateway may touch. The SQL name and
// sheet name differ because the database schemas predate this application
// and keep their Spanish identifiers, while workbook exports always used
// English sheet names.
type Table struct {
	Name     string
	SQLName  string
	Sheet    string
	IDColumn string
	Columns  []string
}

const (
	TableEmployees     = "Employees"
	TableContracts     = "Contracts"
	TableActivities    = "Activities"
	TableReports       = "Reports"
	TableNotifications = "Notifications"
)

var tableRegistry = map[string]Table{
	TableEmployees: {
		Name:     TableEmployees,
		SQLName:  "Empleados",
		Sheet:    "Employees",
		IDColumn: "id_empleado",
		Columns:  []string{"id_empleado", "nombre", "correo", "rol", "activo", "password_hash"},
	},
	TableContracts: {
		Name:     TableContracts,
		SQLName:  "Contratos",
		Sheet:    "Contracts",
		IDColumn: "id_contrato",
		Columns:  []string{"id_contrato", "nombre_contrato", "fecha_inicio", "fecha_fin", "id_empleado", "id_validador"},
	},
	TableActivities: {
		Name:     TableActivities,
		SQLName:  "Actividades",
		Sheet:    "Activities",
		IDColumn: "id_actividad",
		Columns:  []string{"id_actividad", "nro", "descripcion", "id_contrato", "porcentaje"},
	},
	TableReports: {
		Name:     TableReports,
		SQLName:  "Reportes",
		Sheet:    "Reports",
		IDColumn: "id_reporte",
		Columns:  []string{"id_reporte", "id_empleado", "id_actividad", "fecha", "acciones_realizadas", "comentarios", "porcentaje", "entregable", "estado"},
	},
	TableNotifications: {
		Name:     TableNotifications,
		SQLName:  "Notificaciones",
		Sheet:    "Notifications",
		IDColumn: "id_notificacion",
		Columns:  []string{"id_notificacion", "id_empleado", "mensaje", "fecha_envio", "leido"},
	},
}

// LookupTable resolves a logical table name. Unknown names are the caller's
// signal to bail out before any SQL is built.
func LookupTable(name string) (Table, bool) {
	table, ok := tableRegistry[name]
	return table, ok
}

func (table Table) hasColumn(name string) bool {
	for _, column := range table.Columns {
		if column == name {
			return true
		}
	}
	return false
}

func (table Table) validColumns(values map[string]any) bool {
	for column := range values {
		if !table.hasColumn(column) {
			return false
		}
	}
	return true
}
