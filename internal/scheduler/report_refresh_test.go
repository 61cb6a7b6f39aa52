package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
)

type stubReportService struct {
	runs    atomic.Int32
	err     error
	started chan struct{}
	release chan struct{}

	mu     sync.Mutex
	latest *monitoring.RunResult
}

func (s *stubReportService) Run(ctx context.Context) (*monitoring.RunResult, error) {
	s.runs.Add(1)
	if s.started != nil {
		s.started <- struct{}{}
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}

	result := &monitoring.RunResult{RunID: "abc123", GeneratedAt: time.Now()}
	s.mu.Lock()
	s.latest = result
	s.mu.Unlock()
	return result, nil
}

func (s *stubReportService) Latest() *monitoring.RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func newRefreshService(stub *stubReportService, enabled bool) *ReportRefreshService {
	cfg := &config.Config{}
	cfg.Report.RefreshEnabled = enabled
	cfg.Report.RefreshCron = "0 6 * * *"
	return NewReportRefreshService(stub, cfg)
}

func TestRefreshReportRunsPipeline(t *testing.T) {
	stub := &stubReportService{}
	service := newRefreshService(stub, true)

	require.NoError(t, service.RefreshReport(context.Background()))
	assert.Equal(t, int32(1), stub.runs.Load())

	status := service.Status()
	assert.False(t, status.Running)
	assert.False(t, status.LastCompletedAt.IsZero())
}

func TestRefreshReportPropagatesError(t *testing.T) {
	stub := &stubReportService{err: errors.New("ledger indisponível")}
	service := newRefreshService(stub, true)

	err := service.RefreshReport(context.Background())
	assert.ErrorContains(t, err, "ledger indisponível")
}

func TestRefreshReportSkipsConcurrentRuns(t *testing.T) {
	stub := &stubReportService{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	service := newRefreshService(stub, true)

	done := make(chan error, 1)
	go func() {
		done <- service.RefreshReport(context.Background())
	}()

	// Espera a primeira execução entrar no pipeline
	<-stub.started

	// A segunda chamada deve ser descartada sem executar o pipeline
	require.NoError(t, service.RefreshReport(context.Background()))
	assert.Equal(t, int32(1), stub.runs.Load())
	assert.True(t, service.Status().Running)

	close(stub.release)
	require.NoError(t, <-done)
}

func TestStartDisabledByConfig(t *testing.T) {
	stub := &stubReportService{}
	service := newRefreshService(stub, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Equal(t, int32(0), stub.runs.Load())
}
