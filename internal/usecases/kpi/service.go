package kpi

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/repository"
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/pkg/metrics"
)

var hundred = decimal.NewFromInt(100)

type KPIService interface {
	ListVendors() []domain.Vendor
	ListBranches() []domain.Branch
	// GetVendorKPI valida o período (YYYY-MM) e o vendedor antes de calcular
	GetVendorKPI(vendorID int, period string) (*domain.KPIReport, error)
	// GetAdminKPI calcula o relatório de todos os vendedores para o mesmo período
	GetAdminKPI(period string) ([]*domain.VendorKPIReport, error)
	UpsertGoal(input GoalInput) error
}

// GoalInput são os dados recebidos para gravar um objetivo. Campos nulos viram 0.
type GoalInput struct {
	VendorID  int
	Period    string
	Total     *float64
	Star      *float64
	CategoryA *float64
	CategoryB *float64
}

type Service struct {
	vendorRepository  repository.VendorRepository
	branchRepository  repository.BranchRepository
	invoiceRepository repository.InvoiceRepository
	goalRepository    repository.GoalRepository
}

func NewService(
	vendorRepository repository.VendorRepository,
	branchRepository repository.BranchRepository,
	invoiceRepository repository.InvoiceRepository,
	goalRepository repository.GoalRepository,
) *Service {
	return &Service{
		vendorRepository:  vendorRepository,
		branchRepository:  branchRepository,
		invoiceRepository: invoiceRepository,
		goalRepository:    goalRepository,
	}
}

func (s *Service) ListVendors() []domain.Vendor {
	return s.vendorRepository.List()
}

func (s *Service) ListBranches() []domain.Branch {
	return s.branchRepository.List()
}

func (s *Service) GetVendorKPI(vendorID int, period string) (*domain.KPIReport, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, invalidPeriod(period)
	}

	if _, ok := s.vendorRepository.GetByID(vendorID); !ok {
		return nil, vendorNotFound(vendorID)
	}

	return s.Aggregate(vendorID, p), nil
}

func (s *Service) GetAdminKPI(period string) ([]*domain.VendorKPIReport, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, invalidPeriod(period)
	}

	vendors := s.vendorRepository.List()
	reports := make([]*domain.VendorKPIReport, 0, len(vendors))
	for _, v := range vendors {
		reports = append(reports, &domain.VendorKPIReport{
			VendorID:   v.ID,
			VendorName: v.Name,
			BranchID:   v.BranchID,
			KPIReport:  s.Aggregate(v.ID, p),
		})
	}

	return reports, nil
}

func (s *Service) UpsertGoal(input GoalInput) error {
	p, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return invalidPeriod(input.Period)
	}

	if _, ok := s.vendorRepository.GetByID(input.VendorID); !ok {
		return vendorNotFound(input.VendorID)
	}

	goal := domain.Goal{
		VendorID:  input.VendorID,
		Period:    p,
		Total:     valueOrZero(input.Total),
		Star:      valueOrZero(input.Star),
		CategoryA: valueOrZero(input.CategoryA),
		CategoryB: valueOrZero(input.CategoryB),
	}
	s.goalRepository.Upsert(goal)
	metrics.IncGoalUpserts()

	logrus.WithFields(logrus.Fields{
		"vendor_id": goal.VendorID,
		"period":    goal.Period.String(),
		"total":     goal.Total,
	}).Info("objetivos: objetivo gravado")

	return nil
}

// Aggregate calcula o avanço do vendedor no período. O vendedor não é validado aqui.
func (s *Service) Aggregate(vendorID int, period domain.Period) *domain.KPIReport {
	invoices := s.invoiceRepository.ListByVendorAndPeriod(vendorID, period)

	var total, star, categoryA, categoryB decimal.Decimal
	for _, inv := range invoices {
		// o total da factura é o do ERP, não a soma das linhas
		total = total.Add(decimal.NewFromFloat(inv.Total))

		for _, line := range inv.Lines {
			if line.Item.IsStar() {
				star = star.Add(decimal.NewFromFloat(line.TotalLine))
			}
			if line.Item.IsCategoryA() {
				categoryA = categoryA.Add(decimal.NewFromFloat(line.Quantity))
			}
			if line.Item.IsCategoryB() {
				categoryB = categoryB.Add(decimal.NewFromFloat(line.Quantity))
			}
		}
	}

	report := &domain.KPIReport{
		Period:         period,
		Total:          total.InexactFloat64(),
		Star:           star.InexactFloat64(),
		CategoryAUnits: categoryA.InexactFloat64(),
		CategoryBUnits: categoryB.InexactFloat64(),
		Invoices:       invoices,
	}

	if goal, ok := s.goalRepository.Get(vendorID, period); ok {
		report.GoalTotal = &goal.Total
		report.GoalStar = &goal.Star
		report.GoalCategoryA = &goal.CategoryA
		report.GoalCategoryB = &goal.CategoryB
	}

	report.TotalPercent = percent(total, report.GoalTotal)
	report.StarPercent = percent(star, report.GoalStar)
	report.CategoryAPercent = percent(categoryA, report.GoalCategoryA)
	report.CategoryBPercent = percent(categoryB, report.GoalCategoryB)

	metrics.IncKPIReports()

	return report
}

// percent retorna actual/goal em %, uma casa decimal, sem limitar a 100.
// Sem objetivo ou objetivo zero resulta em 0.
func percent(actual decimal.Decimal, goal *float64) float64 {
	if goal == nil || *goal == 0 {
		return 0
	}
	return actual.Div(decimal.NewFromFloat(*goal)).Mul(hundred).RoundBank(1).InexactFloat64()
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
