package duxdomain

import "time"

// DateRange é o intervalo fechado usado por compras e facturas
type DateRange struct {
	From time.Time
	To   time.Time
}

type InvoicesParams struct {
	CompanyID int
	BranchID  int
	Range     DateRange
	// Limit e Offset só são enviados quando maiores que zero
	Limit  int
	Offset int
}
