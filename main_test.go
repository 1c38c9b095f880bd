package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipapi/bootstrap"
	"tipapi/config"
	"tipapi/controllers"
	"tipapi/pkg/metrics"
	"tipapi/pkg/testdb"
	"tipapi/repository"
	"tipapi/services"
	"tipapi/utils"
)

func testRouter(t *testing.T, cfg config.AppConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testdb.Open(t, bootstrap.Migrate)
	m := metrics.New(prometheus.NewRegistry())
	paging := services.PageSettings{DefaultSize: 20, MaxSize: 100}
	base := repository.NewBaseRepositoryWithDB(db)
	controllers.SetReviewCycleGroupService(services.NewReviewCycleGroupServiceWithDeps(
		base, repository.NewReviewCycleGroupRepositoryWithDB(db), m, paging))
	controllers.SetReviewGroupCriteriaService(services.NewReviewGroupCriteriaServiceWithDeps(
		base, repository.NewReviewGroupCriteriaRepositoryWithDB(db), m, paging))
	return newRouter(m, cfg)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouterServesAPIAndMetrics(t *testing.T) {
	r := testRouter(t, config.AppConfig{MetricsEnabled: true, SwaggerEnabled: true})

	w := get(r, "/api/v1/public/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))

	require.Equal(t, http.StatusOK, get(r, "/api/v1/review-cycle-groups").Code)

	w = get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tip_http_requests_total")

	w = get(r, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/review-cycle-groups")
}

func TestRouterOptionalEndpointsDisabled(t *testing.T) {
	r := testRouter(t, config.AppConfig{})
	assert.Equal(t, http.StatusNotFound, get(r, "/metrics").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/swagger/doc.json").Code)
}
