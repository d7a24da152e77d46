// Package metrics concentra os coletores Prometheus expostos em /metrics
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Requisições HTTP atendidas, por método, rota e status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duração das requisições HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	kpiReports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kpi_reports_total",
		Help: "Relatórios de KPI calculados.",
	})

	goalUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kpi_goal_upserts_total",
		Help: "Objetivos gravados ou substituídos.",
	})

	duxRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dux_requests_total",
		Help: "Chamadas ao ERP Dux por recurso e resultado.",
	}, []string{"resource", "result"})

	attainment = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kpi_attainment_pct",
		Help: "Avanço percentual do último snapshot por vendedor e métrica.",
	}, []string{"vendor_id", "metric"})

	snapshotRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kpi_snapshot_runs_total",
		Help: "Execuções do snapshot de KPI.",
	}, []string{"result"})
)

func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func IncKPIReports() { kpiReports.Inc() }

func IncGoalUpserts() { goalUpserts.Inc() }

// IncDuxRequests registra uma chamada ao Dux. result: ok, rate_limited ou error
func IncDuxRequests(resource, result string) {
	duxRequests.WithLabelValues(resource, result).Inc()
}

func SetAttainment(vendorID int, metric string, pct float64) {
	attainment.WithLabelValues(strconv.Itoa(vendorID), metric).Set(pct)
}

func IncSnapshotRuns(result string) {
	snapshotRuns.WithLabelValues(result).Inc()
}
