package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/pkg/log"
	"github.com/intep/price-monitor/pkg/utils"
)

var summaryCSVHeader = []string{
	"Código",
	"Descrição",
	"Cliente",
	"Projeto",
	"Cliente Principal",
	"Projeto Principal",
	"Preço Inicial",
	"Preço Atual",
	"Variação %",
	"Último Reajuste",
	"Dias s/ Reajuste",
	"Faturamento Janela",
	"Média Mensal",
	"Meses c/ Venda",
	"Clientes",
	"Importância",
	"Status",
}

// WriteSummaryCSV grava o resumo por produto em CSV separado por ponto e
// vírgula, no mesmo formato da exportação do dashboard.
func WriteSummaryCSV(path string, summaries []*domain.ProductSummary) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "falha ao criar %s", path)
	}
	defer file.Close()

	// BOM para o Excel reconhecer UTF-8
	if _, err := file.WriteString("\uFEFF"); err != nil {
		return errors.Wrapf(err, "falha ao escrever em %s", path)
	}

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	if err := writer.Write(summaryCSVHeader); err != nil {
		return errors.Wrapf(err, "falha ao escrever em %s", path)
	}

	for _, summary := range summaries {
		record := []string{
			summary.ProductCode,
			summary.Description,
			summary.Client,
			summary.Project,
			summary.PrincipalClient,
			summary.PrincipalProject,
			utils.FormatBRNumber(summary.InitialPrice, 2),
			utils.FormatBRNumber(summary.CurrentPrice, 2),
			utils.FormatBRNumber(summary.VariationPct, 2),
			utils.FormatBRDate(summary.LastReadjustment),
			strconv.Itoa(summary.DaysSinceReadjustment),
			utils.FormatBRNumber(summary.WindowRevenue, 2),
			utils.FormatBRNumber(summary.MonthlyAverage, 2),
			strconv.Itoa(summary.MonthsWithSales),
			strconv.Itoa(summary.ClientsServed),
			string(summary.Importance),
			string(summary.Status),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "falha ao escrever em %s", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "falha ao escrever em %s", path)
	}

	log.L.WithFields(log.Fields{
		"file":     path,
		"products": len(summaries),
	}).Info("Resumo exportado em CSV")

	return nil
}
