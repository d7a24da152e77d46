package domain

// Goal é o objetivo mensal de um vendedor. Existe no máximo um por (VendorID, Period).
type Goal struct {
	VendorID  int     `json:"vendedor_id"`
	Period    Period  `json:"periodo"`
	Total     float64 `json:"objetivo_total"`
	Star      float64 `json:"objetivo_estrella"`
	CategoryA float64 `json:"objetivo_senda20"`
	CategoryB float64 `json:"objetivo_jaspe3"`
}

// GoalKey identifica um objetivo
type GoalKey struct {
	VendorID int
	Period   Period
}

func (g Goal) Key() GoalKey {
	return GoalKey{VendorID: g.VendorID, Period: g.Period}
}
