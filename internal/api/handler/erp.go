package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux/duxclient"
	"github.com/vfg2006/vendor-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-kpi-api/pkg/log"
)

// GetERPResource repassa um GET ao Dux. A query string vira os parâmetros do recurso.
func GetERPResource(service dux.DuxIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource := httprouter.ParamsFromContext(r.Context()).ByName("recurso")

		resp, err := service.Fetch(r.Context(), resource, r.URL.Query())
		if err != nil {
			log.ForContext(r.Context()).WithField("resource", resource).WithError(err).Warn("dux: consulta falhou")
			writeERPError(w, err)
			return
		}

		if resp.RateLimited {
			retryAfter := int(math.Ceil(resp.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			apiErrors.WriteError(w, apiErrors.ErrRateLimited, resp.Text, map[string]int{"retry_after_seconds": retryAfter})
			return
		}

		if resp.IsJSON() {
			writeJSON(w, http.StatusOK, resp.JSON)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"raw": resp.Text})
	}
}

func writeERPError(w http.ResponseWriter, err error) {
	var httpErr *duxclient.HTTPError

	switch {
	case errors.Is(err, dux.ErrUnknownResource):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, dux.ErrMissingParam):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, dux.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.As(err, &httpErr):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o ERP", map[string]any{
			"status": httpErr.StatusCode,
			"body":   httpErr.Body,
		})
	default:
		apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrExternalService))
	}
}
