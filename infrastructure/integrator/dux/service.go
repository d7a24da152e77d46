package dux

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	duxdomain "github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux/domain"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux/duxclient"
	"github.com/vfg2006/vendor-kpi-api/pkg/metrics"
)

type DuxIntegrator interface {
	// Fetch valida os parâmetros do recurso e executa o GET
	Fetch(ctx context.Context, resource string, params url.Values) (*duxclient.Response, error)

	GetDeposits(ctx context.Context) (*duxclient.Response, error)
	GetCompanies(ctx context.Context) (*duxclient.Response, error)
	GetItems(ctx context.Context) (*duxclient.Response, error)
	GetPriceLists(ctx context.Context) (*duxclient.Response, error)
	GetLocations(ctx context.Context) (*duxclient.Response, error)
	GetOrders(ctx context.Context, filters url.Values) (*duxclient.Response, error)
	GetTaxWithholdings(ctx context.Context) (*duxclient.Response, error)
	GetPersonnel(ctx context.Context) (*duxclient.Response, error)
	GetProvinces(ctx context.Context) (*duxclient.Response, error)
	GetCategories(ctx context.Context) (*duxclient.Response, error)
	GetSubcategories(ctx context.Context) (*duxclient.Response, error)
	GetBranches(ctx context.Context) (*duxclient.Response, error)
	GetInvoiceStatus(ctx context.Context, invoiceID int) (*duxclient.Response, error)
	GetItemStatus(ctx context.Context, itemID int) (*duxclient.Response, error)
	GetPurchases(ctx context.Context, dates duxdomain.DateRange) (*duxclient.Response, error)
	GetInvoices(ctx context.Context, params duxdomain.InvoicesParams) (*duxclient.Response, error)
}

type DuxService struct {
	Client duxclient.Client
}

func New(client duxclient.Client) DuxIntegrator {
	return &DuxService{
		Client: client,
	}
}

func (s *DuxService) Fetch(ctx context.Context, resource string, params url.Values) (*duxclient.Response, error) {
	r, ok := duxdomain.LookupResource(resource)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	if err := validate(r, params); err != nil {
		return nil, err
	}

	resp, err := s.Client.Get(ctx, r.Name, params)
	if err != nil {
		metrics.IncDuxRequests(r.Name, "error")
		logrus.WithError(err).WithField("resource", r.Name).Error("dux: erro na consulta")
		return nil, err
	}

	if resp.RateLimited {
		metrics.IncDuxRequests(r.Name, "rate_limited")
		logrus.WithFields(logrus.Fields{
			"resource":    r.Name,
			"retry_after": resp.RetryAfter.String(),
		}).Warn("dux: limite de requisições atingido")
		return resp, nil
	}

	metrics.IncDuxRequests(r.Name, "ok")
	return resp, nil
}

func validate(r duxdomain.Resource, params url.Values) error {
	for _, name := range r.Required {
		if params.Get(name) == "" {
			return fmt.Errorf("%w: %s requer %s", ErrMissingParam, r.Name, name)
		}
	}

	for _, name := range r.Dates {
		if _, err := time.Parse(time.DateOnly, params.Get(name)); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidDate, name, params.Get(name))
		}
	}

	return nil
}

func (s *DuxService) GetDeposits(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceDeposits, nil)
}

func (s *DuxService) GetCompanies(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceCompanies, nil)
}

func (s *DuxService) GetItems(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceItems, nil)
}

func (s *DuxService) GetPriceLists(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourcePriceLists, nil)
}

func (s *DuxService) GetLocations(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceLocations, nil)
}

func (s *DuxService) GetOrders(ctx context.Context, filters url.Values) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceOrders, filters)
}

func (s *DuxService) GetTaxWithholdings(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceTaxWithholdings, nil)
}

func (s *DuxService) GetPersonnel(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourcePersonnel, nil)
}

func (s *DuxService) GetProvinces(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceProvinces, nil)
}

func (s *DuxService) GetCategories(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceCategories, nil)
}

func (s *DuxService) GetSubcategories(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceSubcategories, nil)
}

func (s *DuxService) GetBranches(ctx context.Context) (*duxclient.Response, error) {
	return s.Fetch(ctx, duxdomain.ResourceBranches, nil)
}

func (s *DuxService) GetInvoiceStatus(ctx context.Context, invoiceID int) (*duxclient.Response, error) {
	params := url.Values{}
	params.Set(duxdomain.ParamInvoiceID, strconv.Itoa(invoiceID))
	return s.Fetch(ctx, duxdomain.ResourceInvoiceStatus, params)
}

func (s *DuxService) GetItemStatus(ctx context.Context, itemID int) (*duxclient.Response, error) {
	params := url.Values{}
	params.Set(duxdomain.ParamItemID, strconv.Itoa(itemID))
	return s.Fetch(ctx, duxdomain.ResourceItemStatus, params)
}

func (s *DuxService) GetPurchases(ctx context.Context, dates duxdomain.DateRange) (*duxclient.Response, error) {
	params := url.Values{}
	setDateRange(params, dates)
	return s.Fetch(ctx, duxdomain.ResourcePurchases, params)
}

func (s *DuxService) GetInvoices(ctx context.Context, p duxdomain.InvoicesParams) (*duxclient.Response, error) {
	params := url.Values{}
	params.Set(duxdomain.ParamCompanyID, strconv.Itoa(p.CompanyID))
	params.Set(duxdomain.ParamBranchID, strconv.Itoa(p.BranchID))
	setDateRange(params, p.Range)
	if p.Limit > 0 {
		params.Set(duxdomain.ParamLimit, strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		params.Set(duxdomain.ParamOffset, strconv.Itoa(p.Offset))
	}
	return s.Fetch(ctx, duxdomain.ResourceInvoices, params)
}

func setDateRange(params url.Values, dates duxdomain.DateRange) {
	if !dates.From.IsZero() {
		params.Set(duxdomain.ParamDateFrom, dates.From.Format(time.DateOnly))
	}
	if !dates.To.IsZero() {
		params.Set(duxdomain.ParamDateTo, dates.To.Format(time.DateOnly))
	}
}
