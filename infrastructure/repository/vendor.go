// Package repository contém as coleções em memória usadas pelo serviço de KPI
package repository

import (
	"slices"

	"github.com/vfg2006/vendor-kpi-api/internal/domain"
)

type VendorRepository interface {
	List() []domain.Vendor
	GetByID(id int) (*domain.Vendor, bool)
}

type BranchRepository interface {
	List() []domain.Branch
}

type vendorRepository struct {
	vendors []domain.Vendor
}

// NewVendorRepository mantém a ordem recebida, que é a ordem de listagem
func NewVendorRepository(vendors []domain.Vendor) VendorRepository {
	return &vendorRepository{vendors: slices.Clone(vendors)}
}

func (r *vendorRepository) List() []domain.Vendor {
	return slices.Clone(r.vendors)
}

func (r *vendorRepository) GetByID(id int) (*domain.Vendor, bool) {
	for _, v := range r.vendors {
		if v.ID == id {
			vendor := v
			return &vendor, true
		}
	}
	return nil, false
}

type branchRepository struct {
	branches []domain.Branch
}

func NewBranchRepository(branches []domain.Branch) BranchRepository {
	return &branchRepository{branches: slices.Clone(branches)}
}

func (r *branchRepository) List() []domain.Branch {
	return slices.Clone(r.branches)
}
