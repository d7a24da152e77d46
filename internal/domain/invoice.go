package domain

// InvoiceLine referencia um item compartilhado. TotalLine é o valor informado pelo ERP,
// não é recalculado a partir de Quantity * UnitPrice.
type InvoiceLine struct {
	Item      *Item   `json:"item"`
	Quantity  float64 `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
	TotalLine float64 `json:"total_linea"`
}

// Invoice representa uma factura de venda. Total também é confiado como veio do ERP.
type Invoice struct {
	ID       int           `json:"id"`
	Date     Date          `json:"fecha"`
	VendorID int           `json:"vendedor_id"`
	BranchID int           `json:"sucursal_id"`
	Total    float64       `json:"total"`
	Lines    []InvoiceLine `json:"detalles"`
}
