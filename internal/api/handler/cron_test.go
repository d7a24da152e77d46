package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-kpi-api/pkg/apiErrors"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualRun() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": false, "enabled": true}
}

func TestRunCronJob(t *testing.T) {
	job := &fakeCronJob{}
	routes := CronJobs(CronJobServices{KPISnapshotService: job})

	rec := serve(t, routes, httptest.NewRequest(http.MethodPost, "/api/cron/run/kpi-snapshot", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cron job iniciada com sucesso","type":"kpi-snapshot"}`, rec.Body.String())
	assert.Equal(t, 1, job.triggered)

	rec = serve(t, routes, httptest.NewRequest(http.MethodPost, "/api/cron/run/meta", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	assert.Equal(t, 1, job.triggered)
}

func TestRunCronJob_WithoutService(t *testing.T) {
	rec := serve(t, CronJobs(CronJobServices{}), httptest.NewRequest(http.MethodPost, "/api/cron/run/kpi-snapshot", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	routes := CronJobs(CronJobServices{KPISnapshotService: &fakeCronJob{}})

	rec := serve(t, routes, httptest.NewRequest(http.MethodGet, "/api/cron/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kpi-snapshot":{"running":false,"enabled":true}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
