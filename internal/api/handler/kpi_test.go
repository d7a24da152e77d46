package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-kpi-api/internal/api/handler/router"
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi/mocks"
	"github.com/vfg2006/vendor-kpi-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func f(v float64) *float64 { return &v }

func serve(t *testing.T, routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetVendorKPI(t *testing.T) {
	september := domain.NewPeriod(2025, time.September)

	tests := []struct {
		name       string
		query      string
		setupMock  func(m *mocks.MockKPIService)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:  "Relatório do vendedor",
			query: "vendedor_id=1&periodo=2025-09",
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().GetVendorKPI(1, "2025-09").Return(&domain.KPIReport{
					Period:       september,
					Total:        77019.88,
					GoalTotal:    f(200000),
					TotalPercent: 38.5,
					Invoices:     []*domain.Invoice{},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "2025-09-01", body["periodo"])
				assert.Equal(t, 77019.88, body["total"])
				assert.Equal(t, 200000.0, body["objetivo_total"])
				assert.Equal(t, 38.5, body["avance_total_pct"])
				assert.Nil(t, body["objetivo_estrella"])
				assert.NotNil(t, body["facturas"])
				assert.Empty(t, body["facturas"])
			},
		},
		{
			name:       "vendedor_id ausente",
			query:      "periodo=2025-09",
			setupMock:  func(m *mocks.MockKPIService) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
			},
		},
		{
			name:       "vendedor_id não numérico",
			query:      "vendedor_id=abc&periodo=2025-09",
			setupMock:  func(m *mocks.MockKPIService) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:  "Período inválido",
			query: "vendedor_id=1&periodo=2025-9",
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().GetVendorKPI(1, "2025-9").
					Return(nil, kpi.NewKPIError(kpi.ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, ""))
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidPeriod, apiErr.Code)
				assert.Equal(t, "periodo debe ser YYYY-MM", apiErr.Message)
				assert.Nil(t, apiErr.Details)
			},
		},
		{
			name:  "Vendedor inexistente",
			query: "vendedor_id=99&periodo=2025-09",
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().GetVendorKPI(99, "2025-09").
					Return(nil, kpi.NewKPIError(kpi.ErrVendorNotFound, apiErrors.ErrVendorNotFound, "id 99"))
			},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeError(t, rec)
				assert.Equal(t, "vendedor no encontrado", apiErr.Message)
				assert.Equal(t, "id 99", apiErr.Details)
			},
		},
		{
			name:  "Erro inesperado",
			query: "vendedor_id=1&periodo=2025-09",
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().GetVendorKPI(1, "2025-09").Return(nil, errors.New("falha"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
				assert.Equal(t, "falha", apiErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockKPIService(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodGet, "/api/kpi?"+tt.query, nil)
			rec := serve(t, KPI(service), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			tt.validate(t, rec)
		})
	}
}

func TestGetAdminKPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockKPIService(ctrl)
	service.EXPECT().GetAdminKPI("2025-09").Return([]*domain.VendorKPIReport{
		{
			VendorID:   1,
			VendorName: "Luciano Torres",
			BranchID:   1,
			KPIReport: &domain.KPIReport{
				Period:       domain.NewPeriod(2025, time.September),
				Total:        10,
				TotalPercent: 1.5,
				Invoices:     []*domain.Invoice{},
			},
		},
	}, nil)
	service.EXPECT().GetAdminKPI("").
		Return(nil, kpi.NewKPIError(kpi.ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, ""))

	rec := serve(t, KPI(service), httptest.NewRequest(http.MethodGet, "/api/admin/kpi?periodo=2025-09", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Luciano Torres", body[0]["vendedor"])
	assert.Equal(t, 1.0, body[0]["sucursal_id"])
	assert.Equal(t, 1.5, body[0]["avance_total_pct"])
	assert.NotContains(t, body[0], "VendorID")

	rec = serve(t, KPI(service), httptest.NewRequest(http.MethodGet, "/api/admin/kpi", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertGoal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.MockKPIService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Objetivo gravado",
			body: `{"vendedor_id":1,"periodo":"2025-10","objetivo_total":1000,"objetivo_senda20":5}`,
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().UpsertGoal(kpi.GoalInput{
					VendorID:  1,
					Period:    "2025-10",
					Total:     f(1000),
					CategoryA: f(5),
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Corpo inválido",
			body:       `{"vendedor_id":`,
			setupMock:  func(m *mocks.MockKPIService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "vendedor_id ausente",
			body:       `{"periodo":"2025-10","objetivo_total":1000}`,
			setupMock:  func(m *mocks.MockKPIService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "vendedor_id nulo",
			body:       `{"vendedor_id":null,"periodo":"2025-10"}`,
			setupMock:  func(m *mocks.MockKPIService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "vendedor_id zero chega ao serviço",
			body: `{"vendedor_id":0,"periodo":"2025-10"}`,
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().UpsertGoal(kpi.GoalInput{VendorID: 0, Period: "2025-10"}).
					Return(kpi.NewKPIError(kpi.ErrVendorNotFound, apiErrors.ErrVendorNotFound, "id 0"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrVendorNotFound,
		},
		{
			name: "Vendedor inexistente",
			body: `{"vendedor_id":77,"periodo":"2025-10"}`,
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().UpsertGoal(gomock.Any()).
					Return(kpi.NewKPIError(kpi.ErrVendorNotFound, apiErrors.ErrVendorNotFound, "id 77"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrVendorNotFound,
		},
		{
			name: "Período inválido",
			body: `{"vendedor_id":1,"periodo":"10-2025"}`,
			setupMock: func(m *mocks.MockKPIService) {
				m.EXPECT().UpsertGoal(gomock.Any()).
					Return(kpi.NewKPIError(kpi.ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, ""))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockKPIService(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/objetivos", strings.NewReader(tt.body))
			rec := serve(t, KPI(service), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
				return
			}
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestListVendorsAndBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockKPIService(ctrl)
	service.EXPECT().ListVendors().Return([]domain.Vendor{{ID: 1, Name: "Luciano Torres", BranchID: 1}})
	service.EXPECT().ListBranches().Return([]domain.Branch{{ID: 2, Name: "BELGRANO"}})

	rec := serve(t, Vendors(service), httptest.NewRequest(http.MethodGet, "/api/vendors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"nombre":"Luciano Torres","sucursal_id":1}]`, rec.Body.String())

	rec = serve(t, Vendors(service), httptest.NewRequest(http.MethodGet, "/api/branches", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"nombre":"BELGRANO"}]`, rec.Body.String())
}
