package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux/mocks"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/repository"
	"github.com/vfg2006/vendor-kpi-api/internal/api/handler"
	"github.com/vfg2006/vendor-kpi-api/internal/config"
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestHandler(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)

	seed := repository.NewSeed(domain.DefaultCampaign())
	service := kpi.NewService(
		repository.NewVendorRepository(seed.Vendors),
		repository.NewBranchRepository(seed.Branches),
		repository.NewInvoiceRepository(seed.Invoices),
		repository.NewGoalRepository(seed.Goals),
	)

	return NewHandler(cfg, service, mocks.NewMockDuxIntegrator(ctrl), handler.CronJobServices{})
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestServer_GoalThenKPI(t *testing.T) {
	h := newTestHandler(t, &config.Config{})

	rec := do(h, http.MethodGet, "/api/kpi?vendedor_id=1&periodo=2025-09", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 38.5, report["avance_total_pct"])
	assert.Equal(t, 31.2, report["avance_estrella_pct"])
	assert.Len(t, report["facturas"], 2)

	var invoices struct {
		Facturas []struct {
			ID       int    `json:"id"`
			Fecha    string `json:"fecha"`
			Detalles []struct {
				Cantidad float64        `json:"cantidad"`
				Item     map[string]any `json:"item"`
			} `json:"detalles"`
		} `json:"facturas"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &invoices))
	require.NotEmpty(t, invoices.Facturas)
	first := invoices.Facturas[0]
	assert.Equal(t, 78266154, first.ID)
	assert.Equal(t, "2025-09-15", first.Fecha)
	require.NotEmpty(t, first.Detalles)
	item := first.Detalles[0].Item
	assert.Equal(t, "77700001", item["cod_item"])
	assert.Equal(t, "SENDA AD X20KG", item["descripcion"])
	assert.Equal(t, "SENDA", item["marca"])
	assert.Equal(t, 20.0, item["peso_kg"])
	assert.Equal(t, true, item["es_senda20"])
	assert.NotContains(t, item, "descricao")

	rec = do(h, http.MethodPost, "/api/objetivos", `{"vendedor_id":3,"periodo":"2025-09","objetivo_total":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/kpi?vendedor_id=3&periodo=2025-09", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 100.0, report["objetivo_total"])
	assert.Equal(t, 0.0, report["objetivo_estrella"])

	rec = do(h, http.MethodPost, "/api/objetivos", `{"periodo":"2025-09","objetivo_total":100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/api/kpi?vendedor_id=99&periodo=2025-09", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/api/kpi?vendedor_id=99&periodo=2025-9", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CorsPreflight(t *testing.T) {
	h := newTestHandler(t, &config.Config{})

	rec := do(h, http.MethodOptions, "/api/objetivos", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_StaticAndMetrics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>KPI</h1>"), 0o644))

	cfg := &config.Config{}
	cfg.Server.StaticDir = dir
	cfg.Server.MetricsEnabled = true
	h := newTestHandler(t, cfg)

	rec := do(h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>KPI</h1>")

	rec = do(h, http.MethodGet, "/api/vendors", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestServer_WithoutStaticDir(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.StaticDir = filepath.Join(t.TempDir(), "nao-existe")
	h := newTestHandler(t, cfg)

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/metrics", "").Code)
}
