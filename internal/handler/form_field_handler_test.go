package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"casecare-service/internal/model"
	"casecare-service/pkg/config"
	"casecare-service/pkg/database"
	"casecare-service/prometheus"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "casecare_test"}})
	os.Exit(m.Run())
}

func setupHandlerDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.FormSection{}, &model.FormField{}))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	return rec
}

func TestFormFieldHandlerRoundTrip(t *testing.T) {
	setupHandlerDB(t)

	rec := doRequest(t, CreateFormField, http.MethodPost, "/api/form-fields",
		`{"form_type":"client","field_name":"allergies","field_label":"Allergies","field_type":"textarea","required":true}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.FormField
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "allergies", created.FieldName)
	assert.Equal(t, 0, created.Order)
	assert.True(t, created.Required)
	assert.True(t, created.IsVisible)
	assert.Equal(t, model.FieldWidthFull, created.Width)

	rec = doRequest(t, ListFormFields, http.MethodGet, "/api/form-fields?form_type=client", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fields []model.FormField
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, created.ID, fields[0].ID)

	rec = doRequest(t, GetFormField, http.MethodGet, "/api/form-fields/"+created.ID, "", map[string]string{"id": created.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, DeleteFormField, http.MethodDelete, "/api/form-fields/"+created.ID, "", map[string]string{"id": created.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, GetFormField, http.MethodGet, "/api/form-fields/"+created.ID, "", map[string]string{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormFieldHandlerDuplicateNameConflict(t *testing.T) {
	setupHandlerDB(t)

	body := `{"form_type":"client","field_name":"allergies","field_label":"Allergies","field_type":"text"}`
	rec := doRequest(t, CreateFormField, http.MethodPost, "/api/form-fields", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, CreateFormField, http.MethodPost, "/api/form-fields", body, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandlersObserveDatabaseOperationDuration(t *testing.T) {
	setupHandlerDB(t)

	rec := doRequest(t, CreateFormField, http.MethodPost, "/api/form-fields",
		`{"form_type":"client","field_name":"allergies","field_label":"Allergies","field_type":"text"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.FormField
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(t, ListFormFields, http.MethodGet, "/api/form-fields?form_type=client", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, DeleteFormField, http.MethodDelete, "/api/form-fields/"+created.ID, "", map[string]string{"id": created.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	// one series per operation label: insert, select, delete
	assert.GreaterOrEqual(t, testutil.CollectAndCount(prometheus.DbOperationDuration), 3)
}

func TestFormFieldHandlerValidation(t *testing.T) {
	setupHandlerDB(t)

	// missing required attributes
	rec := doRequest(t, CreateFormField, http.MethodPost, "/api/form-fields", `{"form_type":"client"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// system fields cannot be deleted
	database.DB.Create(&model.FormField{
		FormType: model.FormTypeClient, FieldName: "name", FieldLabel: "Family Name",
		FieldType: "text", Width: model.FieldWidthFull, IsSystem: true, IsVisible: true,
	})
	var system model.FormField
	require.NoError(t, database.DB.First(&system, "field_name = ?", "name").Error)

	rec = doRequest(t, DeleteFormField, http.MethodDelete, "/api/form-fields/"+system.ID, "", map[string]string{"id": system.ID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
