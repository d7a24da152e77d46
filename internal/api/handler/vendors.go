package handler

import (
	"net/http"

	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
)

func ListVendors(service kpi.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListVendors())
	}
}

func ListBranches(service kpi.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListBranches())
	}
}
