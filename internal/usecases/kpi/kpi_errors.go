package kpi

import (
	"errors"
	"fmt"

	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/pkg/apiErrors"
)

// Erros específicos do contexto de KPI. As mensagens vão para o cliente.
var (
	ErrInvalidPeriod  = domain.ErrInvalidPeriod
	ErrVendorNotFound = errors.New("vendedor no encontrado")
)

// KPIError é um erro com o código da API que o handler deve responder
type KPIError struct {
	Err     error
	Code    string
	Details string
}

func (e *KPIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *KPIError) Unwrap() error {
	return e.Err
}

func NewKPIError(err error, code string, details string) *KPIError {
	return &KPIError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func invalidPeriod(raw string) *KPIError {
	return NewKPIError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, fmt.Sprintf("recebido %q", raw))
}

func vendorNotFound(vendorID int) *KPIError {
	return NewKPIError(ErrVendorNotFound, apiErrors.ErrVendorNotFound, fmt.Sprintf("id %d", vendorID))
}
