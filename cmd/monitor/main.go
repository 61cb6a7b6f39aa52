package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intep/price-monitor/infrastructure/characteristics"
	"github.com/intep/price-monitor/infrastructure/database/postgres"
	"github.com/intep/price-monitor/infrastructure/ledger"
	"github.com/intep/price-monitor/infrastructure/report"
	"github.com/intep/price-monitor/infrastructure/repository"
	"github.com/intep/price-monitor/internal/api"
	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/scheduler"
	"github.com/intep/price-monitor/internal/usecases/analyzing"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
	"github.com/intep/price-monitor/internal/usecases/summarizing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshots em Postgres são opcionais; sem eles o monitor só gera o HTML
	var snapshotRepo monitoring.SnapshotRepository
	if cfg.Snapshot.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		repo := repository.NewSummarySnapshotRepository(pgConn)
		if err := repo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o esquema de snapshots")
		}

		if cfg.Snapshot.RetentionDays > 0 {
			purged, err := repo.DeleteOlderThan(ctx, cfg.Snapshot.RetentionDays)
			if err != nil {
				logrus.WithError(err).Warn("Erro ao limpar snapshots antigos")
			} else if purged > 0 {
				logrus.WithField("snapshots", purged).Info("Snapshots antigos removidos")
			}
		}

		snapshotRepo = repo
	}

	renderer, err := report.NewRenderer(cfg.Report, cfg.Analysis)
	if err != nil {
		logrus.Fatal(err)
	}

	reportService := monitoring.NewReportService(
		ledger.NewLoader(cfg.Ledger),
		characteristics.NewLoader(cfg.Characteristics),
		analyzing.NewProductAnalyzer(cfg.Analysis),
		summarizing.NewRevenueSummarizer(),
		renderer,
		snapshotRepo,
	)

	// Primeira execução sempre acontece na subida
	if _, err := reportService.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro na execução do monitor de preços")
	}

	if !cfg.Server.Enabled && !cfg.Report.RefreshEnabled {
		return
	}

	refreshService := scheduler.NewReportRefreshService(reportService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else if cfg.Report.RefreshEnabled {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	// Sem servidor o processo fica vivo só para o agendador
	if !cfg.Server.Enabled {
		waitForShutdown(ctx)
		return
	}

	server, err := api.New(cfg, reportService, refreshService, snapshotRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func waitForShutdown(ctx context.Context) {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
