package repository

import (
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
)

type InvoiceRepository interface {
	// ListByVendorAndPeriod retorna as facturas do vendedor cuja data cai no mês do período
	ListByVendorAndPeriod(vendorID int, period domain.Period) []*domain.Invoice
}

type invoiceRepository struct {
	invoices []*domain.Invoice
}

func NewInvoiceRepository(invoices []*domain.Invoice) InvoiceRepository {
	return &invoiceRepository{invoices: invoices}
}

func (r *invoiceRepository) ListByVendorAndPeriod(vendorID int, period domain.Period) []*domain.Invoice {
	result := make([]*domain.Invoice, 0)
	for _, inv := range r.invoices {
		if inv.VendorID == vendorID && period.Contains(inv.Date) {
			result = append(result, inv)
		}
	}
	return result
}
