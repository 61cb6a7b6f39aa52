package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
	"github.com/intep/price-monitor/pkg/apiErrors"
	"github.com/intep/price-monitor/pkg/log"
)

type snapshotResponse struct {
	RunID     string                   `json:"run_id"`
	Products  int                      `json:"products"`
	Summaries []*domain.ProductSummary `json:"summaries"`
}

// SnapshotRunHandler devolve o resumo persistido de uma execução passada.
func SnapshotRunHandler(snapshots monitoring.SnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runID := httprouter.ParamsFromContext(r.Context()).ByName("run")

		summaries, err := snapshots.ListRun(r.Context(), runID)
		if err != nil {
			log.L.WithError(err).Error("Falha ao consultar snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation,
				"Falha ao consultar o histórico de execuções", nil)
			return
		}
		if len(summaries) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrUnknownRun,
				"Execução sem snapshot persistido", map[string]string{"run_id": runID})
			return
		}

		writeJSON(w, snapshotResponse{
			RunID:     runID,
			Products:  len(summaries),
			Summaries: summaries,
		})
	})
}
