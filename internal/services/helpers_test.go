package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/avelarde/avance/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) *store.Gateway {
	t.Helper()
	storage := store.Connect(store.Options{SQLitePath: filepath.Join(t.TempDir(), "avance.db")})
	require.Equal(t, store.BackendSQLite, storage.Kind())
	t.Cleanup(func() { _ = storage.Close() })
	return store.NewGateway(storage, time.Minute)
}

func seedEmployee(t *testing.T, gateway *store.Gateway, name string, role string, password string) uint {
	t.Helper()
	email := name + "@example.com"
	require.NoError(t, NewEmployeeService(gateway).Create(EmployeeInput{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: password,
	}))

	rows := gateway.Fetch(store.TableEmployees, map[string]any{"correo": email})
	require.Len(t, rows, 1)
	table, _ := store.LookupTable(store.TableEmployees)
	return rows[0].ID(table)
}

func seedContract(t *testing.T, gateway *store.Gateway, name string, employeeID uint) uint {
	t.Helper()
	require.NoError(t, NewContractService(gateway).Create(ContractInput{
		Name:       name,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		EmployeeID: employeeID,
	}))

	rows := gateway.Fetch(store.TableContracts, map[string]any{"nombre_contrato": name})
	require.Len(t, rows, 1)
	table, _ := store.LookupTable(store.TableContracts)
	return rows[0].ID(table)
}

func seedActivity(t *testing.T, gateway *store.Gateway, contractID uint, sequence int, description string) uint {
	t.Helper()
	require.NoError(t, NewActivityService(gateway).Create(ActivityInput{
		Sequence:    sequence,
		Description: description,
		ContractID:  contractID,
		Target:      100,
	}))

	rows := gateway.Fetch(store.TableActivities, map[string]any{"descripcion": description})
	require.Len(t, rows, 1)
	table, _ := store.LookupTable(store.TableActivities)
	return rows[0].ID(table)
}
