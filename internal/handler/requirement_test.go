package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gabriel-Pasternak/ReqWise/internal/events"
	"github.com/Gabriel-Pasternak/ReqWise/internal/fields"
	"github.com/Gabriel-Pasternak/ReqWise/internal/handler"
	"github.com/Gabriel-Pasternak/ReqWise/internal/notify"
	"github.com/Gabriel-Pasternak/ReqWise/internal/router"
	"github.com/Gabriel-Pasternak/ReqWise/internal/service"
	"github.com/Gabriel-Pasternak/ReqWise/internal/store"
	"github.com/Gabriel-Pasternak/ReqWise/internal/suggest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := fields.NewRegistry(fields.Defaults())
	svc := service.NewRequirementService(store.NewMemoryStore(), registry, suggest.Noop{})
	hub := events.NewHub(nil)

	r := gin.New()
	router.Setup(r, router.Deps{
		RequirementHandler: handler.NewRequirementHandler(svc, hub, notify.NoopNotifier{}),
		FieldHandler:       handler.NewFieldHandler(registry),
		DashboardHandler:   handler.NewDashboardHandler(svc),
		EventsHandler:      handler.NewEventsHandler(hub),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "User Login",
		"description": "Authenticate users.",
		"priority":    "High",
		"riskLevel":   "Medium",
		"owner":       "Alice",
		"tags":        []string{"auth"},
		"customFields": map[string]interface{}{
			"project": "Apollo",
			"module":  "Core",
		},
	}
}

func TestCreateRequirement(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/requirements", validBody())
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, envelope["code"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "REQ-001", data["id"])
	assert.Equal(t, "Draft", data["status"])
	versions := data["versions"].([]interface{})
	require.Len(t, versions, 1)
}

func TestCreateRequirement_ValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	body := validBody()
	body["title"] = "ab"
	delete(body, "customFields")

	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/requirements", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 40001, envelope["code"])

	data := envelope["data"].(map[string]interface{})
	errs := data["errors"].([]interface{})
	assert.NotEmpty(t, errs)

	fieldsHit := make(map[string]bool)
	for _, e := range errs {
		fieldsHit[e.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fieldsHit["title"])
	assert.True(t, fieldsHit["project"]) // required custom field missing
}

func TestGetRequirement_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/v1/requirements/REQ-404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, 40404, envelope["code"])
}

func TestUpdateRequirement(t *testing.T) {
	r := newTestRouter(t)

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/requirements", validBody())
	id := created["data"].(map[string]interface{})["id"].(string)

	w, envelope := doJSON(t, r, http.MethodPut, "/api/v1/requirements/"+id, map[string]interface{}{
		"owner": "Bob",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Bob", data["owner"])
	versions := data["versions"].([]interface{})
	require.Len(t, versions, 2)
}

func TestDeleteRequirement_Finality(t *testing.T) {
	r := newTestRouter(t)

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/requirements", validBody())
	id := created["data"].(map[string]interface{})["id"].(string)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/v1/requirements/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/requirements/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/requirements/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRequirements_Filter(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/v1/requirements", validBody())
	second := validBody()
	second["title"] = "Export Reports"
	second["priority"] = "Low"
	doJSON(t, r, http.MethodPost, "/api/v1/requirements", second)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/v1/requirements?priority=Low", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total"])

	list := data["list"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Export Reports", list[0].(map[string]interface{})["title"])
}

func TestListVersions(t *testing.T) {
	r := newTestRouter(t)

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/requirements", validBody())
	id := created["data"].(map[string]interface{})["id"].(string)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/v1/requirements/"+id+"/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	versions := data["versions"].([]interface{})
	require.Len(t, versions, 1)
	v := versions[0].(map[string]interface{})
	assert.EqualValues(t, 1, v["versionNumber"])
	assert.Equal(t, "Created requirement", v["changes"])
}

func TestSuggestTags_ShortText(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/tags/suggest", map[string]string{"text": "short"})
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.Empty(t, data["tags"])
}

func TestListCustomFields(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/v1/custom-fields", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	defs := data["fields"].([]interface{})
	require.Len(t, defs, 4)
	assert.Equal(t, "project", defs[0].(map[string]interface{})["id"])
}

func TestDashboardStats(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/v1/requirements", validBody())

	w, envelope := doJSON(t, r, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total"])
	byStatus := data["by_status"].(map[string]interface{})
	assert.EqualValues(t, 1, byStatus["Draft"])
}
