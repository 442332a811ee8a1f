package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRowIntAcrossBackendTypes(t *testing.T) {
	row := Row{
		"driver_int":   int64(42),
		"driver_float": float64(87.0),
		"cell_int":     "42",
		"cell_float":   "87.5",
		"cell_junk":    "n/a",
	}

	assert.Equal(t, 42, row.Int("driver_int"))
	assert.Equal(t, 87, row.Int("driver_float"))
	assert.Equal(t, 42, row.Int("cell_int"))
	assert.Equal(t, 87, row.Int("cell_float"))
	assert.Equal(t, 0, row.Int("cell_junk"))
	assert.Equal(t, 0, row.Int("missing"))
}

func TestRowBoolAcceptsSpreadsheetSpellings(t *testing.T) {
	for _, raw := range []string{"1", "true", "yes", "si", "Sí", " SI "} {
		assert.True(t, Row{"activo": raw}.Bool("activo"), "raw=%q", raw)
	}
	for _, raw := range []string{"0", "false", "no", ""} {
		assert.False(t, Row{"activo": raw}.Bool("activo"), "raw=%q", raw)
	}
	assert.True(t, Row{"activo": int64(1)}.Bool("activo"))
	assert.False(t, Row{"activo": int64(0)}.Bool("activo"))
}

func TestRowTimeParsesCommonLayouts(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, want, Row{"fecha": "2024-03-15"}.Time("fecha"))
	assert.Equal(t, want, Row{"fecha": want}.Time("fecha"))
	assert.True(t, Row{"fecha": "not a date"}.Time("fecha").IsZero())
	assert.True(t, Row{}.Time("fecha").IsZero())
}

func TestRowID(t *testing.T) {
	table, _ := LookupTable(TableEmployees)

	assert.Equal(t, uint(7), Row{"id_empleado": int64(7)}.ID(table))
	assert.Equal(t, uint(7), Row{"id_empleado": "7"}.ID(table))
	assert.Equal(t, uint(0), Row{"id_empleado": int64(-1)}.ID(table))
	assert.Equal(t, uint(0), Row{}.ID(table))
}
