package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipapi/pkg/apperrors"
	"tipapi/pkg/metrics"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { ErrorResponse(c, err) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(w, req)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NotFound("ReviewCycleGroup", 7), http.StatusNotFound, apperrors.CodeNotFound},
		{fmt.Errorf("wrapped: %w", apperrors.Conflict(apperrors.CodeReviewGroupExists, "dup")), http.StatusConflict, apperrors.CodeReviewGroupExists},
		{apperrors.Validation("bad page", nil), http.StatusBadRequest, apperrors.CodeValidation},
		{errors.New("connection refused"), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tc := range cases {
		w, body := serveError(t, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, tc.code, body.ErrorCode)
		assert.False(t, body.Success)
		assert.Equal(t, "req-1", body.RequestID)
		assert.NotEmpty(t, body.Timestamp)
	}
}

func TestErrorResponseHidesInfrastructureDetail(t *testing.T) {
	_, body := serveError(t, errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	assert.Equal(t, "internal server error", body.Message)
}

func TestErrorResponseValidationDetail(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"required"`
	}
	verr := ValidateStruct(&input{})
	require.Error(t, verr)

	w, body := serveError(t, apperrors.Validation("invalid input", verr))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid input: name: must satisfy required", body.Message)
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := gin.New()
	r.Use(MetricsMiddleware(m), LoggerMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	routes := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "tip_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "route" {
					routes[l.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(2), routes["/items/:id"])
	assert.Equal(t, float64(1), routes["unmatched"])
}
