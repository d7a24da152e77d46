package domain

type Vendor struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	BranchID int    `json:"sucursal_id"`
}

type Branch struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}
