package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/repository"
	"github.com/vfg2006/vendor-kpi-api/internal/config"
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi/mocks"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2025, 9, 20, 7, 0, 0, 0, time.UTC)
}

func TestKPISnapshotService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockKPIService(ctrl)

	service := NewKPISnapshotService(mockReporter, &config.Config{})
	service.now = fixedNow

	mockReporter.EXPECT().
		GetAdminKPI("2025-09").
		Return([]*domain.VendorKPIReport{
			{VendorID: 1, VendorName: "Luciano Torres", BranchID: 1, KPIReport: &domain.KPIReport{TotalPercent: 38.5}},
			{VendorID: 3, VendorName: "Carlos Pérez", BranchID: 1, KPIReport: &domain.KPIReport{}},
		}, nil)

	result, err := service.Run()
	require.NoError(t, err)
	assert.Equal(t, "2025-09", result.Period)
	assert.Equal(t, 2, result.Vendors)
	assert.Len(t, result.RunID, 6)

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, result.RunID, status["last_run_id"])
	assert.Equal(t, "", status["last_error"])
}

func TestKPISnapshotService_Run_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockKPIService(ctrl)

	service := NewKPISnapshotService(mockReporter, &config.Config{})
	service.now = fixedNow

	mockReporter.EXPECT().
		GetAdminKPI(gomock.Any()).
		Return(nil, errors.New("falha"))

	_, err := service.Run()
	require.Error(t, err)

	status := service.GetStatus()
	assert.Contains(t, status["last_error"], "falha")
	assert.Equal(t, false, status["running"])
}

func TestKPISnapshotService_Run_RejectsOverlap(t *testing.T) {
	service := NewKPISnapshotService(nil, &config.Config{})
	service.running = true

	_, err := service.Run()
	assert.ErrorIs(t, err, ErrSnapshotRunning)
}

func TestKPISnapshotService_Run_WithSeededService(t *testing.T) {
	seed := repository.NewSeed(domain.DefaultCampaign())
	kpiService := kpi.NewService(
		repository.NewVendorRepository(seed.Vendors),
		repository.NewBranchRepository(seed.Branches),
		repository.NewInvoiceRepository(seed.Invoices),
		repository.NewGoalRepository(seed.Goals),
	)

	service := NewKPISnapshotService(kpiService, &config.Config{})
	service.now = fixedNow

	result, err := service.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Vendors)
}

func TestKPISnapshotService_Start_Disabled(t *testing.T) {
	service := NewKPISnapshotService(nil, &config.Config{
		KPISnapshot: config.KPISnapshot{Enabled: false, CronSchedule: "0 7 * * *"},
	})

	assert.NoError(t, service.Start(context.Background()))
}

func TestKPISnapshotService_Start_InvalidCron(t *testing.T) {
	service := NewKPISnapshotService(nil, &config.Config{
		KPISnapshot: config.KPISnapshot{Enabled: true, CronSchedule: "não é cron"},
	})

	assert.Error(t, service.Start(context.Background()))
}
