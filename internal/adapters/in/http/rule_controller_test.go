package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
	"github.com/agendavel/agenda-rules-api/internal/core/services/rule_service"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields)       {}
func (l nopLogger) Info(event string, fields out.LogFields)        {}
func (l nopLogger) Warn(event string, fields out.LogFields)        {}
func (l nopLogger) Error(event string, fields out.LogFields)       {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

type memoryDocumentPort struct{}

func (p *memoryDocumentPort) Load(ctx context.Context) (*domain.RuleDocument, error) {
	return domain.NewRuleDocument(), nil
}

func (p *memoryDocumentPort) Save(ctx context.Context, document *domain.RuleDocument) error {
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	service := rule_service.NewRuleService(
		domain.NewRuleDocument(),
		&memoryDocumentPort{},
		nil,
		nopLogger{},
		cfg,
	)

	router := gin.New()
	NewRuleController(service, cfg, nopLogger{}).RegisterRoutes(router)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func deleteForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestTestEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := get(router, "/api/v1/test")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "API ENDPOINT WORKING!", decodeBody(t, recorder)["status"])
}

func TestCreateDailyRule(t *testing.T) {
	t.Run("creates an interval", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/daily", url.Values{
			"interval_start": {"09:00"},
			"interval_end":   {"12:00"},
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.NotEmpty(t, body["rule_id"])
		assert.Equal(t, "09:00", body["start"])
	})

	t.Run("missing keys answer 400", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/daily", url.Values{
			"interval_start": {"09:00"},
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "ERROR", decodeBody(t, recorder)["status"])
	})

	t.Run("bad time format answers 406", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/daily", url.Values{
			"interval_start": {"9h00"},
			"interval_end":   {"12:00"},
		})
		assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	})

	t.Run("overlapping interval answers 409", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/daily", url.Values{
			"interval_start": {"09:00"},
			"interval_end":   {"12:00"},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = postForm(router, "/api/v1/create/daily", url.Values{
			"interval_start": {"10:00"},
			"interval_end":   {"11:00"},
		})
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, "Conflit between intervals available", decodeBody(t, recorder)["solution"])
	})
}

func TestCreateSpecificDayRule(t *testing.T) {
	t.Run("creates a rule", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/specificDay", url.Values{
			"day":            {"03-06-2024"},
			"interval_start": {"09:00"},
			"interval_end":   {"10:00"},
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "03-06-2024", body["day"])
		assert.Equal(t, "segundas", body["this_day_of_the_week_name"])
	})

	t.Run("bad date format answers 406", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/specificDay", url.Values{
			"day":            {"2024-06-03"},
			"interval_start": {"09:00"},
			"interval_end":   {"10:00"},
		})
		assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	})
}

func TestCreateWeeklyRule(t *testing.T) {
	t.Run("creates a bucket", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/weekly", url.Values{
			"day_of_the_week_name": {"segundas"},
			"interval_start":       {"08:00"},
			"interval_end":         {"09:00"},
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "segundas", decodeBody(t, recorder)["day_of_the_week_name"])
	})

	t.Run("weekend names are rejected", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/weekly", url.Values{
			"day_of_the_week_name": {"domingos"},
			"interval_start":       {"08:00"},
			"interval_end":         {"09:00"},
		})
		assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	})
}

func TestDeleteRuleEndpoint(t *testing.T) {
	t.Run("weekly without interval id answers 405", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/weekly", url.Values{
			"day_of_the_week_name": {"segundas"},
			"interval_start":       {"08:00"},
			"interval_end":         {"09:00"},
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		ruleID := decodeBody(t, recorder)["rule_id"].(string)

		recorder = deleteForm(router, "/api/v1/rule", url.Values{
			"rule_type": {"weekly"},
			"rule_id":   {ruleID},
		})
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})

	t.Run("unknown daily rule answers 404", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := deleteForm(router, "/api/v1/rule", url.Values{
			"rule_type": {"daily"},
			"rule_id":   {"nonexistent"},
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("invalid rule type answers 406", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := deleteForm(router, "/api/v1/rule", url.Values{
			"rule_type": {"monthly"},
			"rule_id":   {"id"},
		})
		assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	})

	t.Run("deletes a daily interval", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/daily", url.Values{
			"interval_start": {"09:00"},
			"interval_end":   {"12:00"},
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		ruleID := decodeBody(t, recorder)["rule_id"].(string)

		recorder = deleteForm(router, "/api/v1/rule", url.Values{
			"rule_type": {"daily"},
			"rule_id":   {ruleID},
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "SUCCESS", decodeBody(t, recorder)["status"])
	})
}

func TestGetAvailable(t *testing.T) {
	t.Run("missing bounds answer 400", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := get(router, "/api/v1/available")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("bad bound format answers 406", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := get(router, "/api/v1/available?day_start=garbage&day_end=01-06-2024")
		assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	})

	t.Run("empty range answers UNAVAILABLE", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := get(router, "/api/v1/available?day_start=01-06-2024&day_end=10-06-2024")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "UNAVAILABLE", decodeBody(t, recorder)["status"])
	})

	t.Run("returns matching days", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := postForm(router, "/api/v1/create/specificDay", url.Values{
			"day":            {"01-06-2024"},
			"interval_start": {"09:00"},
			"interval_end":   {"10:00"},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = get(router, "/api/v1/available?day_start=01-06-2024&day_end=01-06-2024")
		assert.Equal(t, http.StatusOK, recorder.Code)

		days := []map[string]interface{}{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &days))
		require.Len(t, days, 1)
		assert.Equal(t, "01-06-2024", days[0]["day"])
	})
}

func TestGetRules(t *testing.T) {
	router := newTestRouter(t)

	recorder := get(router, "/api/v1/rules")
	assert.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Contains(t, body, "specific_days")
	assert.Contains(t, body, "daily")
	assert.Contains(t, body, "weekly")
}
