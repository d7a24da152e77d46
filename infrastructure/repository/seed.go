package repository

import (
	"time"

	"github.com/vfg2006/vendor-kpi-api/internal/domain"
)

// Seed é o conjunto de dados de demonstração. Em produção viria de um ETL do Dux.
type Seed struct {
	Vendors  []domain.Vendor
	Branches []domain.Branch
	Invoices []*domain.Invoice
	Goals    []domain.Goal
}

func kg(v float64) *float64 { return &v }

// NewSeed monta os dados de demonstração classificando os itens com a campanha informada
func NewSeed(campaign domain.Campaign) Seed {
	senda := campaign.NewItem("77700001", "SENDA AD X20KG", "SENDA", kg(20))
	petsPlus := campaign.NewItem("463257", "PELOTA 3 MODOS P+", "PETS PLUS IMPORTADOS", nil)
	jaspe := campaign.NewItem("900908", "JASPE ADULTO X 20 KG", "JASPE", kg(20))

	september := domain.NewPeriod(2025, time.September)

	return Seed{
		Vendors: []domain.Vendor{
			{ID: 1, Name: "Luciano Torres", BranchID: 1},
			{ID: 2, Name: "María López", BranchID: 2},
			{ID: 3, Name: "Carlos Pérez", BranchID: 1},
		},
		Branches: []domain.Branch{
			{ID: 1, Name: "BANDA"},
			{ID: 2, Name: "BELGRANO"},
		},
		Invoices: []*domain.Invoice{
			{
				ID:       78266154,
				Date:     domain.NewDate(2025, time.September, 15),
				VendorID: 1,
				BranchID: 1,
				Total:    62019.88,
				Lines: []domain.InvoiceLine{
					{Item: senda, Quantity: 2, UnitPrice: 15000, TotalLine: 30000},
					{Item: petsPlus, Quantity: 5, UnitPrice: 2000, TotalLine: 10000},
					{Item: jaspe, Quantity: 1, UnitPrice: 22019.88, TotalLine: 22019.88},
				},
			},
			{
				ID:       78252726,
				Date:     domain.NewDate(2025, time.September, 15),
				VendorID: 2,
				BranchID: 2,
				Total:    27100.37,
				Lines: []domain.InvoiceLine{
					{Item: senda, Quantity: 1, UnitPrice: 18000, TotalLine: 18000},
					{Item: petsPlus, Quantity: 2, UnitPrice: 1000, TotalLine: 2000},
					{Item: jaspe, Quantity: 1, UnitPrice: 7100.37, TotalLine: 7100.37},
				},
			},
			{
				ID:       78252727,
				Date:     domain.NewDate(2025, time.September, 16),
				VendorID: 1,
				BranchID: 1,
				Total:    15000,
				Lines: []domain.InvoiceLine{
					{Item: petsPlus, Quantity: 3, UnitPrice: 5000, TotalLine: 15000},
				},
			},
		},
		Goals: []domain.Goal{
			{VendorID: 1, Period: september, Total: 200000, Star: 80000, CategoryA: 50, CategoryB: 40},
			{VendorID: 2, Period: september, Total: 150000, Star: 60000, CategoryA: 30, CategoryB: 25},
		},
	}
}
