package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
	"github.com/vfg2006/vendor-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-kpi-api/pkg/log"
)

// GetVendorKPI responde o avanço de um vendedor. Query: vendedor_id e periodo (YYYY-MM).
func GetVendorKPI(service kpi.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		rawID := query.Get("vendedor_id")
		if rawID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "vendedor_id es obligatorio", nil)
			return
		}

		vendorID, err := strconv.Atoi(rawID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "vendedor_id debe ser un entero", nil)
			return
		}

		report, err := service.GetVendorKPI(vendorID, query.Get("periodo"))
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"vendor_id": vendorID,
				"period":    query.Get("periodo"),
			}).WithError(err).Warn("kpi: consulta rejeitada")
			writeKPIError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetAdminKPI responde o avanço de todos os vendedores no período
func GetAdminKPI(service kpi.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("periodo")

		reports, err := service.GetAdminKPI(period)
		if err != nil {
			log.ForContext(r.Context()).WithField("period", period).WithError(err).Warn("kpi: consulta admin rejeitada")
			writeKPIError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}

// goalRequest distingue vendedor_id ausente de vendedor_id 0
type goalRequest struct {
	VendorID  *int     `json:"vendedor_id"`
	Period    string   `json:"periodo"`
	Total     *float64 `json:"objetivo_total"`
	Star      *float64 `json:"objetivo_estrella"`
	CategoryA *float64 `json:"objetivo_senda20"`
	CategoryB *float64 `json:"objetivo_jaspe3"`
}

// UpsertGoal grava ou substitui o objetivo de um vendedor no período
func UpsertGoal(service kpi.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req goalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "cuerpo de la solicitud inválido", err.Error())
			return
		}

		if req.VendorID == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "vendedor_id es obligatorio", nil)
			return
		}

		input := kpi.GoalInput{
			VendorID:  *req.VendorID,
			Period:    req.Period,
			Total:     req.Total,
			Star:      req.Star,
			CategoryA: req.CategoryA,
			CategoryB: req.CategoryB,
		}

		if err := service.UpsertGoal(input); err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"vendor_id": input.VendorID,
				"period":    input.Period,
			}).WithError(err).Warn("objetivos: gravação rejeitada")
			writeKPIError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeKPIError(w http.ResponseWriter, err error) {
	var kErr *kpi.KPIError
	if errors.As(err, &kErr) {
		var details any
		if kErr.Details != "" {
			details = kErr.Details
		}
		apiErrors.WriteError(w, kErr.Code, kErr.Err.Error(), details)
		return
	}

	apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrInternalServer))
}
