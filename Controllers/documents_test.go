package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CaOffice/Models"
)

func TestCreateDocumentMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/doc-recived-master/", map[string]interface{}{
		"doc_name": "Balance sheet",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeMap(t, resp)
	assert.Equal(t, "task_code and doc_name are required", out["error"])
}

func TestDocumentUserIDCoercion(t *testing.T) {
	app, db := newTestApp(t)
	taskCode := createTaskAllotment(t, app, nil)

	// Numeric string parses to an integer
	code := createJSON(t, app, "/doc-recived-master/", map[string]interface{}{
		"task_code":   taskCode,
		"doc_name":    "Balance sheet",
		"add_user_id": "7",
	}, "code")

	var doc Models.Document
	require.NoError(t, db.First(&doc, "code = ?", code).Error)
	require.NotNil(t, doc.AddUserID)
	assert.Equal(t, 7, *doc.AddUserID)

	// A username is stored as NULL, not rejected
	code = createJSON(t, app, "/doc-recived-master/", map[string]interface{}{
		"task_code":   taskCode,
		"doc_name":    "Ledger extract",
		"add_user_id": "admin",
	}, "code")

	doc = Models.Document{}
	require.NoError(t, db.First(&doc, "code = ?", code).Error)
	assert.Nil(t, doc.AddUserID)

	// Plain numbers pass through on update as well
	resp := doRequest(t, app, http.MethodPut, "/doc-recived-master/"+itoa(code), map[string]interface{}{
		"task_code":    taskCode,
		"doc_name":     "Ledger extract",
		"modi_user_id": 12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&doc, "code = ?", code).Error)
	require.NotNil(t, doc.ModiUserID)
	assert.Equal(t, 12, *doc.ModiUserID)
}

func TestDocumentListIncludesTaskName(t *testing.T) {
	app, _ := newTestApp(t)
	taskCode := createTaskAllotment(t, app, map[string]interface{}{
		"allot_date":     "2024-04-01",
		"prime_taskname": "Annual audit",
	})
	docCode := createJSON(t, app, "/doc-recived-master/", map[string]interface{}{
		"task_code": taskCode,
		"doc_name":  "Trial balance",
	}, "code")

	resp := doRequest(t, app, http.MethodGet, "/doc-recived-master/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := decodeList(t, resp)
	require.Len(t, rows, 1)
	assert.Equal(t, "Annual audit", rows[0]["prime_taskname"])

	resp = doRequest(t, app, http.MethodGet, "/doc-recived-master/"+itoa(docCode), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	row := decodeMap(t, resp)
	assert.Equal(t, "Trial balance", row["doc_name"])
	assert.Equal(t, "Annual audit", row["prime_taskname"])
}

func TestDocumentTaskNameNullWhenParentUnnamed(t *testing.T) {
	app, _ := newTestApp(t)
	taskCode := createTaskAllotment(t, app, nil)
	docCode := createJSON(t, app, "/doc-recived-master/", map[string]interface{}{
		"task_code": taskCode,
		"doc_name":  "Form 16",
	}, "code")

	resp := doRequest(t, app, http.MethodGet, "/doc-recived-master/"+itoa(docCode), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	row := decodeMap(t, resp)
	assert.Nil(t, row["prime_taskname"])
}

func TestDocumentCreateUnknownTaskConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/doc-recived-master/", map[string]interface{}{
		"task_code": 4242,
		"doc_name":  "Orphan",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeletingTaskCascadesToDocuments(t *testing.T) {
	app, db := newTestApp(t)
	taskCode := createTaskAllotment(t, app, nil)
	docCode := createJSON(t, app, "/doc-recived-master/", map[string]interface{}{
		"task_code": taskCode,
		"doc_name":  "Cascade target",
	}, "code")

	resp := doRequest(t, app, http.MethodDelete, "/task-allotment/"+itoa(taskCode), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&Models.Document{}).Where("code = ?", docCode).Count(&count).Error)
	assert.Zero(t, count, "documents must go with their task")

	resp = doRequest(t, app, http.MethodGet, "/doc-recived-master/"+itoa(docCode), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocumentDeleteNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodDelete, "/doc-recived-master/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decodeMap(t, resp)
	assert.Equal(t, "Document not found", out["error"])
}
