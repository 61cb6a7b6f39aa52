package monitoring

import (
	"context"

	"github.com/intep/price-monitor/infrastructure/characteristics"
	"github.com/intep/price-monitor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// LedgerLoader carrega as transações dos arquivos de faturamento.
type LedgerLoader interface {
	Load(ctx context.Context) ([]*domain.Transaction, error)
}

// CharacteristicsSource carrega o cadastro de características por produto.
type CharacteristicsSource interface {
	Load(ctx context.Context) (map[string]characteristics.Product, error)
}

// DashboardRenderer materializa o resumo em um dashboard consumível.
type DashboardRenderer interface {
	Render(ctx context.Context, summaries []*domain.ProductSummary, dataset domain.RevenueDataset) error
}

// SnapshotRepository persiste o resultado de cada execução para histórico.
type SnapshotRepository interface {
	SaveRun(ctx context.Context, runID string, summaries []*domain.ProductSummary) error
	ListRun(ctx context.Context, runID string) ([]*domain.ProductSummary, error)
}
