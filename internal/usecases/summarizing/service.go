package summarizing

import (
	"math"
	"sort"
	"strconv"

	"github.com/intep/price-monitor/internal/domain"
)

// RevenueSummarizer produz as séries de faturamento anual consumidas pelo
// gráfico do dashboard: uma por produto mais a série global.
type RevenueSummarizer interface {
	AnnualRevenue(transactions []*domain.Transaction, productCode string) domain.AnnualRevenueSeries
	BuildDataset(transactions []*domain.Transaction, summaries []*domain.ProductSummary) domain.RevenueDataset
}

type revenueSummarizer struct{}

func NewRevenueSummarizer() RevenueSummarizer {
	return &revenueSummarizer{}
}

// AnnualRevenue soma o faturamento bruto por ano das transações do produto
// informado, ou de todas quando o código é o sentinela global. Anos em ordem
// crescente e valores arredondados para o real inteiro.
func (s *revenueSummarizer) AnnualRevenue(transactions []*domain.Transaction, productCode string) domain.AnnualRevenueSeries {
	totals := make(map[int]float64)

	for _, transaction := range transactions {
		if transaction.Date.IsZero() {
			continue
		}
		if productCode != domain.GlobalSeriesKey && transaction.ProductCode != productCode {
			continue
		}
		totals[transaction.Date.Year()] += transaction.GrossTotal
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	series := domain.AnnualRevenueSeries{
		Years:    make([]string, 0, len(years)),
		Revenues: make([]float64, 0, len(years)),
	}
	for _, year := range years {
		series.Years = append(series.Years, strconv.Itoa(year))
		series.Revenues = append(series.Revenues, math.Round(totals[year]))
	}

	return series
}

// BuildDataset pré-calcula a série de cada produto presente no resumo mais a
// série global, indexadas pela chave usada pelo seletor do gráfico.
func (s *revenueSummarizer) BuildDataset(transactions []*domain.Transaction, summaries []*domain.ProductSummary) domain.RevenueDataset {
	dataset := make(domain.RevenueDataset, len(summaries)+1)

	dataset[domain.GlobalSeriesKey] = s.AnnualRevenue(transactions, domain.GlobalSeriesKey)
	for _, summary := range summaries {
		dataset[summary.ProductCode] = s.AnnualRevenue(transactions, summary.ProductCode)
	}

	return dataset
}
