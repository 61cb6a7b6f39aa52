package monitoring

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/intep/price-monitor/infrastructure/characteristics"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/internal/usecases/analyzing"
	"github.com/intep/price-monitor/internal/usecases/summarizing"
	"github.com/intep/price-monitor/pkg/log"
	"github.com/intep/price-monitor/pkg/utils"
)

// ReportService executa o pipeline completo do monitor: carga do ledger,
// join de características, agregação, séries anuais e renderização.
type ReportService interface {
	Run(ctx context.Context) (*RunResult, error)
	Latest() *RunResult
}

// RunResult é o resultado consolidado de uma execução do pipeline.
type RunResult struct {
	RunID        string                   `json:"run_id"`
	GeneratedAt  time.Time                `json:"generated_at"`
	Transactions int                      `json:"transactions"`
	Summaries    []*domain.ProductSummary `json:"summaries"`
	Dataset      domain.RevenueDataset    `json:"dataset"`
}

type reportService struct {
	ledger          LedgerLoader
	characteristics CharacteristicsSource
	analyzer        analyzing.ProductAnalyzer
	summarizer      summarizing.RevenueSummarizer
	renderer        DashboardRenderer
	snapshots       SnapshotRepository

	mu     sync.RWMutex
	latest *RunResult
}

// NewReportService monta o pipeline. O repositório de snapshots é opcional
// (nil desativa a persistência do histórico).
func NewReportService(
	ledger LedgerLoader,
	characteristicsSource CharacteristicsSource,
	analyzer analyzing.ProductAnalyzer,
	summarizer summarizing.RevenueSummarizer,
	renderer DashboardRenderer,
	snapshots SnapshotRepository,
) ReportService {
	return &reportService{
		ledger:          ledger,
		characteristics: characteristicsSource,
		analyzer:        analyzer,
		summarizer:      summarizer,
		renderer:        renderer,
		snapshots:       snapshots,
	}
}

func (s *reportService) Run(ctx context.Context) (*RunResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao gerar o id da execução")
	}
	logger := log.L.WithField("run_id", runID)

	logger.Info("Iniciando execução do monitor de preços")

	transactions, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha na carga do ledger")
	}
	if len(transactions) == 0 {
		return nil, errors.New("nenhuma transação carregada do ledger")
	}

	products, err := s.characteristics.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha na carga de características")
	}
	characteristics.Apply(transactions, products)

	summaries := s.analyzer.Analyze(transactions)
	dataset := s.summarizer.BuildDataset(transactions, summaries)

	if err := s.renderer.Render(ctx, summaries, dataset); err != nil {
		return nil, errors.Wrap(err, "falha na renderização do dashboard")
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveRun(ctx, runID, summaries); err != nil {
			// Histórico é acessório: a execução já produziu o dashboard
			logger.WithError(err).Warn("Falha ao persistir o snapshot da execução")
		}
	}

	result := &RunResult{
		RunID:        runID,
		GeneratedAt:  time.Now(),
		Transactions: len(transactions),
		Summaries:    summaries,
		Dataset:      dataset,
	}

	s.mu.Lock()
	s.latest = result
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"transactions": result.Transactions,
		"products":     len(summaries),
	}).Info("Execução do monitor concluída")

	return result, nil
}

// Latest retorna o resultado da última execução bem-sucedida, ou nil quando
// o pipeline ainda não rodou.
func (s *reportService) Latest() *RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
