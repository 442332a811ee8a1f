package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/avelarde/avance/internal/services"
	"github.com/avelarde/avance/internal/store"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Gateway) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	templatesDir := filepath.Join(filepath.Dir(filepath.Dir(testFile)), "templates")

	storage := store.Connect(store.Options{
		SQLitePath: filepath.Join(t.TempDir(), "avance-test.db"),
	})
	if storage.Kind() != store.BackendSQLite {
		t.Fatalf("expected sqlite test backend, got %s", storage.Kind())
	}
	t.Cleanup(func() {
		_ = storage.Close()
	})
	gateway := store.NewGateway(storage, time.Minute)

	handler, err := NewHandler(gateway, "test-secret-key", templatesDir, time.Hour, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, gateway
}

func createTestEmployee(t *testing.T, gateway *store.Gateway, name string, email string, role string, password string, active bool) uint {
	t.Helper()

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	ok := gateway.Insert(store.TableEmployees, map[string]any{
		"nombre":        name,
		"correo":        email,
		"rol":           role,
		"activo":        active,
		"password_hash": passwordHash,
	})
	if !ok {
		t.Fatalf("insert employee %s", email)
	}

	rows := gateway.Fetch(store.TableEmployees, map[string]any{"correo": email})
	if len(rows) != 1 {
		t.Fatalf("expected exactly one employee for %s, got %d", email, len(rows))
	}
	table, _ := store.LookupTable(store.TableEmployees)
	return rows[0].ID(table)
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func postForm(t *testing.T, app *fiber.App, path string, authCookie string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func getPage(t *testing.T, app *fiber.App, path string, authCookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}
