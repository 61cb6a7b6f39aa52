package monitoring_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/intep/price-monitor/infrastructure/characteristics"
	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/internal/usecases/analyzing"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
	"github.com/intep/price-monitor/internal/usecases/monitoring/mocks"
	"github.com/intep/price-monitor/internal/usecases/summarizing"
	"github.com/intep/price-monitor/pkg/log"
)

type pipelineMocks struct {
	ledger          *mocks.MockLedgerLoader
	characteristics *mocks.MockCharacteristicsSource
	renderer        *mocks.MockDashboardRenderer
	snapshots       *mocks.MockSnapshotRepository
}

func newPipeline(t *testing.T, withSnapshots bool) (monitoring.ReportService, pipelineMocks) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	m := pipelineMocks{
		ledger:          mocks.NewMockLedgerLoader(ctrl),
		characteristics: mocks.NewMockCharacteristicsSource(ctrl),
		renderer:        mocks.NewMockDashboardRenderer(ctrl),
		snapshots:       mocks.NewMockSnapshotRepository(ctrl),
	}

	analyzer := analyzing.NewProductAnalyzer(config.Analysis{
		MinimumVariationPct:  0.5,
		ReadjustmentAlertDay: 90,
		MinimumRevenue:       1000,
		AnalysisMonths:       6,
	})

	var snapshots monitoring.SnapshotRepository
	if withSnapshots {
		snapshots = m.snapshots
	}

	service := monitoring.NewReportService(
		m.ledger,
		m.characteristics,
		analyzer,
		summarizing.NewRevenueSummarizer(),
		m.renderer,
		snapshots,
	)

	return service, m
}

func ledgerFixture() []*domain.Transaction {
	return []*domain.Transaction{
		{
			ProductCode: "P1",
			Description: "CONEXÃO RÁPIDA",
			ClientCode:  "C1",
			ClientName:  "ALFA",
			Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			Quantity:    10,
			GrossTotal:  12000,
		},
	}
}

func TestRunExecutesFullPipeline(t *testing.T) {
	service, m := newPipeline(t, true)
	ctx := context.Background()

	m.ledger.EXPECT().Load(ctx).Return(ledgerFixture(), nil)
	m.characteristics.EXPECT().Load(ctx).Return(map[string]characteristics.Product{
		"P1": {Client: "ALFA", Project: "PROJ-A"},
	}, nil)
	m.renderer.EXPECT().
		Render(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, summaries []*domain.ProductSummary, dataset domain.RevenueDataset) error {
			require.Len(t, summaries, 1)
			assert.Equal(t, "P1", summaries[0].ProductCode)
			assert.Equal(t, "ALFA", summaries[0].Client)
			assert.Equal(t, "PROJ-A", summaries[0].Project)
			assert.Contains(t, dataset, domain.GlobalSeriesKey)
			assert.Contains(t, dataset, "P1")
			return nil
		})
	m.snapshots.EXPECT().SaveRun(ctx, gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Run(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 1, result.Transactions)
	require.Len(t, result.Summaries, 1)
	assert.Equal(t, result, service.Latest())
}

func TestRunFailsWhenLedgerIsEmpty(t *testing.T) {
	service, m := newPipeline(t, false)
	ctx := context.Background()

	m.ledger.EXPECT().Load(ctx).Return(nil, nil)

	_, err := service.Run(ctx)
	assert.ErrorContains(t, err, "nenhuma transação")
	assert.Nil(t, service.Latest())
}

func TestRunPropagatesLoaderError(t *testing.T) {
	service, m := newPipeline(t, false)
	ctx := context.Background()

	m.ledger.EXPECT().Load(ctx).Return(nil, errors.New("disco cheio"))

	_, err := service.Run(ctx)
	assert.ErrorContains(t, err, "falha na carga do ledger")
}

func TestRunPropagatesRendererError(t *testing.T) {
	service, m := newPipeline(t, false)
	ctx := context.Background()

	m.ledger.EXPECT().Load(ctx).Return(ledgerFixture(), nil)
	m.characteristics.EXPECT().Load(ctx).Return(nil, nil)
	m.renderer.EXPECT().Render(ctx, gomock.Any(), gomock.Any()).Return(errors.New("sem permissão"))

	_, err := service.Run(ctx)
	assert.ErrorContains(t, err, "falha na renderização")
}

func TestRunToleratesSnapshotFailure(t *testing.T) {
	service, m := newPipeline(t, true)
	ctx := context.Background()

	m.ledger.EXPECT().Load(ctx).Return(ledgerFixture(), nil)
	m.characteristics.EXPECT().Load(ctx).Return(nil, nil)
	m.renderer.EXPECT().Render(ctx, gomock.Any(), gomock.Any()).Return(nil)
	m.snapshots.EXPECT().SaveRun(ctx, gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))

	result, err := service.Run(ctx)
	require.NoError(t, err)
	assert.NotNil(t, result)
}
