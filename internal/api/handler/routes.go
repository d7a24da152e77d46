package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux"
	"github.com/vfg2006/vendor-kpi-api/internal/api/handler/router"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
	"github.com/vfg2006/vendor-kpi-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Vendors(service kpi.KPIService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/vendors",
			Method:  http.MethodGet,
			Handler: ListVendors(service),
		},
		{
			Path:    "/api/branches",
			Method:  http.MethodGet,
			Handler: ListBranches(service),
		},
	}
}

func KPI(service kpi.KPIService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/kpi",
			Method:  http.MethodGet,
			Handler: GetVendorKPI(service),
		},
		{
			Path:    "/api/admin/kpi",
			Method:  http.MethodGet,
			Handler: GetAdminKPI(service),
		},
		{
			Path:    "/api/objetivos",
			Method:  http.MethodPost,
			Handler: UpsertGoal(service),
		},
	}
}

// ERP expõe os recursos de leitura do Dux
func ERP(service dux.DuxIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/erp/:recurso",
			Method:      http.MethodGet,
			Handler:     GetERPResource(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}

// CronJobs retorna as rotas para gerenciamento de cron jobs
func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
