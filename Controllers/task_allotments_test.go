package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskAllotmentRequiresDate(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/task-allotment/", map[string]interface{}{
		"prime_taskname": "Audit",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeMap(t, resp)
	assert.Equal(t, "Allotment date is required", out["error"])
}

func TestCreateTaskAllotmentLegacyDateAlias(t *testing.T) {
	app, _ := newTestApp(t)

	// Older clients send alloted_date instead of allot_date
	code := createJSON(t, app, "/task-allotment/", map[string]interface{}{
		"alloted_date":   "2024-04-02",
		"prime_taskname": "ITR Filing",
	}, "code")

	resp := doRequest(t, app, http.MethodGet, "/task-allotment/"+itoa(code), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	row := decodeMap(t, resp)
	assert.Equal(t, "2024-04-02", row["allot_date"])
}

func TestTaskAllotmentWithReferences(t *testing.T) {
	app, _ := newTestApp(t)
	clientCode := createClient(t, app, "F-001")
	empCode := createEmployee(t, app, "Priya Sharma")

	code := createTaskAllotment(t, app, map[string]interface{}{
		"allot_date":             "2024-04-01",
		"due_date":               "2024-04-30",
		"rm_emp_code":            empCode,
		"received_by":            empCode,
		"alloted_to":             empCode,
		"client_code":            clientCode,
		"financial_year":         "2024-25",
		"status":                 "Pending",
		"prime_taskname":         "Annual audit",
		"time_taken_to_complete": 2.5,
		"add_user_id":            "admin",
	})

	resp := doRequest(t, app, http.MethodGet, "/task-allotment/"+itoa(code), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	row := decodeMap(t, resp)
	assert.Equal(t, float64(empCode), row["rm_emp_code"])
	assert.Equal(t, float64(clientCode), row["client_code"])
	assert.Equal(t, "admin", row["add_user_id"])
	assert.Equal(t, 2.5, row["time_taken_to_complete"])
}

func TestCreateTaskAllotmentUnknownEmployeeConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/task-allotment/", map[string]interface{}{
		"allot_date":  "2024-04-01",
		"rm_emp_code": 4242,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdateTaskAllotment(t *testing.T) {
	app, _ := newTestApp(t)
	code := createTaskAllotment(t, app, map[string]interface{}{
		"allot_date": "2024-04-01",
		"status":     "Pending",
	})

	resp := doRequest(t, app, http.MethodPut, "/task-allotment/"+itoa(code), map[string]interface{}{
		"allot_date":   "2024-04-01",
		"status":       "Completed",
		"modi_user_id": "admin",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeMap(t, resp)
	assert.Equal(t, "Task updated", out["message"])

	resp = doRequest(t, app, http.MethodGet, "/task-allotment/"+itoa(code), nil)
	row := decodeMap(t, resp)
	assert.Equal(t, "Completed", row["status"])
}

func TestTaskAllotmentNotFoundPaths(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/task-allotment/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decodeMap(t, resp)
	assert.Equal(t, "Task not found", out["error"])

	resp = doRequest(t, app, http.MethodPut, "/task-allotment/999", map[string]interface{}{
		"allot_date": "2024-04-01",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/task-allotment/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportTaskAllotments(t *testing.T) {
	app, _ := newTestApp(t)
	createTaskAllotment(t, app, map[string]interface{}{
		"allot_date":     "2024-04-01",
		"prime_taskname": "Annual audit",
	})

	resp := doRequest(t, app, http.MethodGet, "/task-allotment/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}
