package domain

// KPIReport é o avanço de um vendedor contra o objetivo de um período.
// Os campos objetivo_* são nulos quando não há objetivo cadastrado.
type KPIReport struct {
	Period Period `json:"periodo"`

	Total        float64  `json:"total"`
	GoalTotal    *float64 `json:"objetivo_total"`
	TotalPercent float64  `json:"avance_total_pct"`

	Star        float64  `json:"estrella"`
	GoalStar    *float64 `json:"objetivo_estrella"`
	StarPercent float64  `json:"avance_estrella_pct"`

	CategoryAUnits   float64  `json:"senda20_unidades"`
	GoalCategoryA    *float64 `json:"objetivo_senda20"`
	CategoryAPercent float64  `json:"avance_senda20_pct"`

	CategoryBUnits   float64  `json:"jaspe3kg_unidades"`
	GoalCategoryB    *float64 `json:"objetivo_jaspe3"`
	CategoryBPercent float64  `json:"avance_jaspe3_pct"`

	Invoices []*Invoice `json:"facturas"`
}

// VendorKPIReport é uma linha do relatório administrativo
type VendorKPIReport struct {
	VendorID   int    `json:"-"`
	VendorName string `json:"vendedor"`
	BranchID   int    `json:"sucursal_id"`
	*KPIReport
}
