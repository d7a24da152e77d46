package duxdomain

// Recursos GET expostos pela API REST do Dux
const (
	ResourceDeposits        = "deposito"
	ResourceCompanies       = "empresas"
	ResourceItems           = "items"
	ResourcePriceLists      = "listaprecioventa"
	ResourceLocations       = "localidades"
	ResourceOrders          = "pedidos"
	ResourceTaxWithholdings = "percepcionesImpuestos"
	ResourcePersonnel       = "personales"
	ResourceProvinces       = "provincias"
	ResourceCategories      = "rubros"
	ResourceSubcategories   = "subrubros"
	ResourceBranches        = "sucursales"
	ResourceInvoiceStatus   = "obtenerEstadoFactura"
	ResourceItemStatus      = "obtenerEstadoItem"
	ResourcePurchases       = "compras"
	ResourceInvoices        = "facturas"
)

// Parâmetros de consulta conhecidos
const (
	ParamInvoiceID = "idCompVenta"
	ParamItemID    = "idItem"
	ParamCompanyID = "idEmpresa"
	ParamBranchID  = "idSucursal"
	ParamDateFrom  = "fechaDesde"
	ParamDateTo    = "fechaHasta"
	ParamLimit     = "limit"
	ParamOffset    = "offset"
)

// Resource descreve um endpoint e os parâmetros que ele exige
type Resource struct {
	Name     string
	Required []string
	// Dates são parâmetros que precisam estar em yyyy-MM-dd
	Dates []string
}

var resources = map[string]Resource{
	ResourceDeposits:        {Name: ResourceDeposits},
	ResourceCompanies:       {Name: ResourceCompanies},
	ResourceItems:           {Name: ResourceItems},
	ResourcePriceLists:      {Name: ResourcePriceLists},
	ResourceLocations:       {Name: ResourceLocations},
	ResourceOrders:          {Name: ResourceOrders},
	ResourceTaxWithholdings: {Name: ResourceTaxWithholdings},
	ResourcePersonnel:       {Name: ResourcePersonnel},
	ResourceProvinces:       {Name: ResourceProvinces},
	ResourceCategories:      {Name: ResourceCategories},
	ResourceSubcategories:   {Name: ResourceSubcategories},
	ResourceBranches:        {Name: ResourceBranches},
	ResourceInvoiceStatus:   {Name: ResourceInvoiceStatus, Required: []string{ParamInvoiceID}},
	ResourceItemStatus:      {Name: ResourceItemStatus, Required: []string{ParamItemID}},
	ResourcePurchases: {
		Name:     ResourcePurchases,
		Required: []string{ParamDateFrom, ParamDateTo},
		Dates:    []string{ParamDateFrom, ParamDateTo},
	},
	ResourceInvoices: {
		Name:     ResourceInvoices,
		Required: []string{ParamCompanyID, ParamBranchID, ParamDateFrom, ParamDateTo},
		Dates:    []string{ParamDateFrom, ParamDateTo},
	},
}

func LookupResource(name string) (Resource, bool) {
	r, ok := resources[name]
	return r, ok
}
