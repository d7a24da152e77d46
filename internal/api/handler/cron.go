package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-kpi-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeKPISnapshot = "kpi-snapshot"
)

// CronJob é o contrato dos agendadores que podem ser disparados manualmente
type CronJob interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores por tipo
type CronJobServices struct {
	KPISnapshotService CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeKPISnapshot:
		return s.KPISnapshotService, s.KPISnapshotService != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: kpi-snapshot", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")
		job.TriggerManualRun()

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.KPISnapshotService != nil {
			status[CronJobTypeKPISnapshot] = services.KPISnapshotService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
