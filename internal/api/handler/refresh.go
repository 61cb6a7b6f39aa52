package handler

import (
	"context"
	"net/http"

	"github.com/intep/price-monitor/internal/scheduler"
	"github.com/intep/price-monitor/pkg/log"
)

// RunRefreshHandler dispara uma reexecução do pipeline em segundo plano.
func RunRefreshHandler(refreshService *scheduler.ReportRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A execução segue em background; o chamador acompanha pelo status
		go func() {
			if err := refreshService.RefreshReport(context.Background()); err != nil {
				log.L.WithError(err).Error("Erro na atualização manual do dashboard")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]string{"status": "scheduled"})
	})
}

// RefreshStatusHandler reporta o estado do agendador de atualização.
func RefreshStatusHandler(refreshService *scheduler.ReportRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, refreshService.Status())
	})
}
