package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"CaOffice/FiberConfig"
	"CaOffice/Models"
)

// newTestApp gives each test an isolated in-memory database with foreign
// keys enforced, migrated the same way production is, behind the real
// route table.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same :memory: database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	Models.Migrate(db)

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createJSON(t *testing.T, app *fiber.App, path string, body interface{}, codeKey string) int {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, path, body)
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
	out := decodeMap(t, resp)
	code, ok := out[codeKey].(float64)
	require.True(t, ok, "response missing %q: %v", codeKey, out)
	return int(code)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func validClientPayload(fileno string) map[string]interface{} {
	return map[string]interface{}{
		"name":        "Acme Traders",
		"fileno":      fileno,
		"firmname":    "Acme",
		"gstno":       "27AAAAA0000A1Z5",
		"pan":         "AAAAA0000A",
		"address":     "12 Market Road",
		"mob":         "9876543210",
		"email":       "acme@example.com",
		"folderpath":  "/files/acme",
		"add_user_id": 1,
		"add_date":    "2024-04-01 10:00:00",
	}
}

func createClient(t *testing.T, app *fiber.App, fileno string) int {
	t.Helper()
	return createJSON(t, app, "/clients/", validClientPayload(fileno), "clientCode")
}

func createEmployee(t *testing.T, app *fiber.App, name string) int {
	t.Helper()
	return createJSON(t, app, "/employees/", map[string]interface{}{
		"name":        name,
		"add_user_id": 1,
	}, "emp_code")
}

func createTaskAllotment(t *testing.T, app *fiber.App, body map[string]interface{}) int {
	t.Helper()
	if body == nil {
		body = map[string]interface{}{}
	}
	if _, ok := body["allot_date"]; !ok {
		body["allot_date"] = "2024-04-01"
	}
	return createJSON(t, app, "/task-allotment/", body, "code")
}
