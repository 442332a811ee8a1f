package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/avelarde/avance/internal/models"
	"github.com/avelarde/avance/internal/store"
)

func TestAdminPagesBlockEmployees(t *testing.T) {
	app, gateway := newTestApp(t)
	createTestEmployee(t, gateway, "Ana", "ana@example.com", models.RoleEmployee, "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, "ana@example.com", "StrongPass1")

	response := getPage(t, app, "/employees", authCookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected employee to be bounced off admin page, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}

	apiResponse := postForm(t, app, "/api/admin/employees", authCookie, url.Values{})
	defer apiResponse.Body.Close()
	if apiResponse.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for employee on admin API, got %d", apiResponse.StatusCode)
	}
}

func TestAdminCreatesEmployeeThroughForm(t *testing.T) {
	app, gateway := newTestApp(t)
	createTestEmployee(t, gateway, "Root", "root@example.com", models.RoleAdministrator, "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, "root@example.com", "StrongPass1")

	form := url.Values{
		"name":      {"Bruno"},
		"email":     {"bruno@example.com"},
		"role":      {models.RoleEmployee},
		"password":  {"BrunoPass1"},
		"return_to": {"/employees"},
	}
	response := postForm(t, app, "/api/admin/employees", authCookie, form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected 303 after create, got %d: %s", response.StatusCode, string(body))
	}
	if location := response.Header.Get("Location"); location != "/employees" {
		t.Fatalf("expected redirect back to /employees, got %q", location)
	}

	rows := gateway.Fetch(store.TableEmployees, map[string]any{"correo": "bruno@example.com"})
	if len(rows) != 1 {
		t.Fatalf("expected the new employee to be stored, found %d rows", len(rows))
	}

	// The new account can sign in right away.
	loginAndExtractAuthCookie(t, app, "bruno@example.com", "BrunoPass1")
}

func TestAdminCreateEmployeeDuplicateEmailJSON(t *testing.T) {
	app, gateway := newTestApp(t)
	createTestEmployee(t, gateway, "Root", "root@example.com", models.RoleAdministrator, "StrongPass1", true)
	createTestEmployee(t, gateway, "Ana", "ana@example.com", models.RoleEmployee, "x", true)
	authCookie := loginAndExtractAuthCookie(t, app, "root@example.com", "StrongPass1")

	form := url.Values{
		"name":     {"Impostor"},
		"email":    {"ana@example.com"},
		"role":     {models.RoleEmployee},
		"password": {"whatever"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/admin/employees", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", response.StatusCode)
	}
}

func TestEmployeesPageListsAccounts(t *testing.T) {
	app, gateway := newTestApp(t)
	createTestEmployee(t, gateway, "Root", "root@example.com", models.RoleAdministrator, "StrongPass1", true)
	createTestEmployee(t, gateway, "Ana", "ana@example.com", models.RoleEmployee, "x", true)
	authCookie := loginAndExtractAuthCookie(t, app, "root@example.com", "StrongPass1")

	response := getPage(t, app, "/employees", authCookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	body, _ := io.ReadAll(response.Body)
	rendered := string(body)
	if !strings.Contains(rendered, "ana@example.com") {
		t.Fatalf("expected employees page to list Ana, got: %s", rendered)
	}
}

func TestDeleteEmployeeWithContractRefused(t *testing.T) {
	app, gateway := newTestApp(t)
	createTestEmployee(t, gateway, "Root", "root@example.com", models.RoleAdministrator, "StrongPass1", true)
	anaID := createTestEmployee(t, gateway, "Ana", "ana@example.com", models.RoleEmployee, "x", true)
	authCookie := loginAndExtractAuthCookie(t, app, "root@example.com", "StrongPass1")

	ok := gateway.Insert(store.TableContracts, map[string]any{
		"nombre_contrato": "Obra Norte",
		"fecha_inicio":    "2024-01-01",
		"fecha_fin":       "2024-12-31",
		"id_empleado":     anaID,
	})
	if !ok {
		t.Fatal("seed contract")
	}

	request := httptest.NewRequest(http.MethodPost,
		"/api/admin/employees/"+strconv.FormatUint(uint64(anaID), 10)+"/delete", nil)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 when dependents exist, got %d", response.StatusCode)
	}

	rows := gateway.Fetch(store.TableEmployees, map[string]any{"id_empleado": anaID})
	if len(rows) != 1 {
		t.Fatal("expected the employee row to survive the refused delete")
	}
}

func TestSetReportStateApproves(t *testing.T) {
	app, gateway := newTestApp(t)
	createTestEmployee(t, gateway, "Root", "root@example.com", models.RoleAdministrator, "StrongPass1", true)
	anaID := createTestEmployee(t, gateway, "Ana", "ana@example.com", models.RoleEmployee, "x", true)
	authCookie := loginAndExtractAuthCookie(t, app, "root@example.com", "StrongPass1")

	if !gateway.Insert(store.TableContracts, map[string]any{
		"nombre_contrato": "Obra Norte",
		"fecha_inicio":    "2024-01-01",
		"fecha_fin":       "2024-12-31",
		"id_empleado":     anaID,
	}) {
		t.Fatal("seed contract")
	}
	contractTable, _ := store.LookupTable(store.TableContracts)
	contractID := gateway.Fetch(store.TableContracts, nil)[0].ID(contractTable)

	if !gateway.Insert(store.TableActivities, map[string]any{
		"nro": 1, "descripcion": "Survey", "id_contrato": contractID, "porcentaje": 100,
	}) {
		t.Fatal("seed activity")
	}
	activityTable, _ := store.LookupTable(store.TableActivities)
	activityID := gateway.Fetch(store.TableActivities, nil)[0].ID(activityTable)

	if !gateway.Insert(store.TableReports, map[string]any{
		"id_empleado": anaID, "id_actividad": activityID, "fecha": "2024-03-15",
		"acciones_realizadas": "walked the site", "entregable": "survey.pdf",
		"porcentaje": 20, "estado": models.ReportPending,
	}) {
		t.Fatal("seed report")
	}
	reportTable, _ := store.LookupTable(store.TableReports)
	reportID := gateway.Fetch(store.TableReports, nil)[0].ID(reportTable)

	form := url.Values{
		"state":     {strconv.Itoa(models.ReportApproved)},
		"return_to": {"/reports"},
	}
	response := postForm(t, app,
		"/api/admin/reports/"+strconv.FormatUint(uint64(reportID), 10)+"/state",
		authCookie, form)
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected 303 after approval, got %d: %s", response.StatusCode, string(body))
	}

	rows := gateway.Fetch(store.TableReports, map[string]any{"id_reporte": reportID})
	if len(rows) != 1 || rows[0].Int("estado") != models.ReportApproved {
		t.Fatalf("expected report %d to be approved, got %v", reportID, rows)
	}
}
