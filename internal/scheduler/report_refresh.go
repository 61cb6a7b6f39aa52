// Package scheduler contém o agendamento de reprocessamento do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
)

type ReportRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// ReportRefreshService reexecuta o pipeline do monitor no horário agendado,
// para que o dashboard acompanhe os exports novos do ledger.
type ReportRefreshService struct {
	scheduler *gocron.Scheduler
	service   monitoring.ReportService
	config    ReportRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewReportRefreshService(
	service monitoring.ReportService,
	cfg *config.Config,
) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule:   cfg.Report.RefreshCron,
		RefreshEnabled: cfg.Report.RefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		service:   service,
		config:    refreshConfig,
	}
}

func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Cron de atualização do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização agendada do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshReport executa o pipeline completo, ignorando chamadas concorrentes
// enquanto uma execução estiver em andamento.
func (s *ReportRefreshService) RefreshReport(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Atualização do dashboard já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do dashboard")

	result, err := s.service.Run(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"products": len(result.Summaries),
	}).Info("Dashboard atualizado")

	return nil
}

// Status reporta o estado do agendador para o endpoint de acompanhamento.
func (s *ReportRefreshService) Status() RefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return RefreshStatus{
		Enabled:         s.config.RefreshEnabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.refreshRunning,
		LastStartedAt:   s.lastRefreshStartedAt,
		LastCompletedAt: s.lastRefreshCompletedAt,
	}
}

type RefreshStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
}
