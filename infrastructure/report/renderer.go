package report

import (
	"context"
	_ "embed"
	"html/template"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/pkg/log"
	"github.com/intep/price-monitor/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed template.html
var dashboardTemplate string

// Renderer monta o dashboard HTML estático a partir do resumo por produto e
// das séries anuais de faturamento.
type Renderer struct {
	options  config.Report
	analysis config.Analysis
	template *template.Template
}

func NewRenderer(options config.Report, analysis config.Analysis) (*Renderer, error) {
	parsed, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao interpretar o template do dashboard")
	}

	return &Renderer{
		options:  options,
		analysis: analysis,
		template: parsed,
	}, nil
}

// Stats são os cartões do topo do dashboard.
type Stats struct {
	TotalProducts  int
	Attention      int
	Occasional     int
	Inactive       int
	HighImportance int
	WindowRevenue  string
}

type summaryRow struct {
	ProductCode      string
	Description      string
	Client           string
	Project          string
	PrincipalClient  string
	PrincipalProject string

	InitialPrice string
	CurrentPrice string
	VariationPct string
	// pos, neg ou zero; usado pelo filtro de sentido da variação
	VariationSign string

	LastReadjustment      string
	DaysSinceReadjustment int
	ReadjustmentAlert     bool

	WindowRevenue string
	// Valor bruto para o recálculo do cartão de faturamento nos filtros
	WindowRevenueValue float64
	MonthlyAverage     string
	MonthsWithSales    int
	ClientsServed      int

	Importance domain.Importance
	Status     domain.Status
	Priority   int
}

type dashboardData struct {
	GeneratedAt    string
	AnalysisMonths int
	AlertDays      int
	Stats          Stats
	Rows           []summaryRow
	RevenueDataset template.JS
	GlobalKey      string
}

// Render grava o dashboard no arquivo configurado. Os resumos já chegam na
// ordem canônica de exibição.
func (r *Renderer) Render(ctx context.Context, summaries []*domain.ProductSummary, dataset domain.RevenueDataset) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "renderização interrompida")
	}

	datasetJSON, err := json.Marshal(dataset)
	if err != nil {
		return errors.Wrap(err, "falha ao serializar as séries anuais")
	}

	data := dashboardData{
		GeneratedAt:    time.Now().Format("02/01/2006 15:04"),
		AnalysisMonths: r.analysis.AnalysisMonths,
		AlertDays:      r.analysis.ReadjustmentAlertDay,
		Stats:          BuildStats(summaries),
		Rows:           buildRows(summaries),
		RevenueDataset: template.JS(datasetJSON),
		GlobalKey:      domain.GlobalSeriesKey,
	}

	file, err := os.Create(r.options.OutputFile)
	if err != nil {
		return errors.Wrapf(err, "falha ao criar %s", r.options.OutputFile)
	}
	defer file.Close()

	if err := r.template.Execute(file, data); err != nil {
		return errors.Wrap(err, "falha ao renderizar o dashboard")
	}

	log.L.WithFields(log.Fields{
		"file":     r.options.OutputFile,
		"products": len(summaries),
	}).Info("Dashboard gerado")

	if r.options.CSVOutputFile != "" {
		if err := WriteSummaryCSV(r.options.CSVOutputFile, summaries); err != nil {
			return err
		}
	}

	return nil
}

// BuildStats agrega os contadores exibidos nos cartões do topo.
func BuildStats(summaries []*domain.ProductSummary) Stats {
	stats := Stats{
		TotalProducts: len(summaries),
	}

	var revenue float64
	for _, summary := range summaries {
		revenue += summary.WindowRevenue

		switch summary.Status {
		case domain.StatusAttention:
			stats.Attention++
		case domain.StatusOccasional:
			stats.Occasional++
		case domain.StatusInactive:
			stats.Inactive++
		}

		if summary.Importance == domain.ImportanceVeryHigh || summary.Importance == domain.ImportanceHigh {
			stats.HighImportance++
		}
	}

	stats.WindowRevenue = utils.FormatBRMoney(revenue, 2)

	return stats
}

func buildRows(summaries []*domain.ProductSummary) []summaryRow {
	rows := make([]summaryRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, summaryRow{
			ProductCode:      summary.ProductCode,
			Description:      summary.Description,
			Client:           summary.Client,
			Project:          summary.Project,
			PrincipalClient:  summary.PrincipalClient,
			PrincipalProject: summary.PrincipalProject,

			InitialPrice:  utils.FormatBRMoney(summary.InitialPrice, 2),
			CurrentPrice:  utils.FormatBRMoney(summary.CurrentPrice, 2),
			VariationPct:  formatVariation(summary.VariationPct),
			VariationSign: variationSign(summary.VariationPct),

			LastReadjustment:      utils.FormatBRDate(summary.LastReadjustment),
			DaysSinceReadjustment: summary.DaysSinceReadjustment,
			ReadjustmentAlert:     summary.ReadjustmentAlert,

			WindowRevenue:      utils.FormatBRMoney(summary.WindowRevenue, 2),
			WindowRevenueValue: summary.WindowRevenue,
			MonthlyAverage:     utils.FormatBRMoney(summary.MonthlyAverage, 2),
			MonthsWithSales:    summary.MonthsWithSales,
			ClientsServed:      summary.ClientsServed,

			Importance: summary.Importance,
			Status:     summary.Status,
			Priority:   summary.Priority,
		})
	}
	return rows
}

// Variação sempre leva sinal explícito, com uma casa decimal
func formatVariation(pct float64) string {
	formatted := utils.FormatBRNumber(pct, 1)
	if pct >= 0 {
		formatted = "+" + formatted
	}
	return formatted + "%"
}

func variationSign(pct float64) string {
	switch {
	case pct > 0:
		return "pos"
	case pct < 0:
		return "neg"
	default:
		return "zero"
	}
}
