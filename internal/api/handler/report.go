package handler

import (
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
	"github.com/intep/price-monitor/pkg/apiErrors"
	"github.com/intep/price-monitor/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardHandler serve o arquivo HTML gerado pela última execução.
func DashboardHandler(reportConfig config.Report) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(reportConfig.OutputFile); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotReady,
				"O dashboard ainda não foi gerado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFile(w, r, reportConfig.OutputFile)
	})
}

type summariesResponse struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt string                   `json:"generated_at"`
	Products    int                      `json:"products"`
	Summaries   []*domain.ProductSummary `json:"summaries"`
}

// SummariesHandler devolve o resumo por produto da última execução.
func SummariesHandler(service monitoring.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := service.Latest()
		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotReady,
				"Nenhuma execução do monitor concluída", nil)
			return
		}

		writeJSON(w, summariesResponse{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
			Products:    len(result.Summaries),
			Summaries:   result.Summaries,
		})
	})
}

// AnnualRevenueHandler devolve a série anual de um produto (ou a global,
// quando o parâmetro product é omitido).
func AnnualRevenueHandler(service monitoring.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := service.Latest()
		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotReady,
				"Nenhuma execução do monitor concluída", nil)
			return
		}

		productCode := r.URL.Query().Get("product")
		if productCode == "" {
			productCode = domain.GlobalSeriesKey
		}

		series, ok := result.Dataset[productCode]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownSeries,
				"Produto sem série anual de faturamento", map[string]string{"product": productCode})
			return
		}

		writeJSON(w, series)
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Falha ao serializar resposta")
	}
}
