package analyzing

import (
	"sort"
	"time"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/pkg/log"
	"github.com/intep/price-monitor/pkg/utils"
)

// ProductAnalyzer agrega as transações do ledger em um resumo por produto com
// as métricas de preço, reajuste, faturamento e classificação.
type ProductAnalyzer interface {
	Analyze(transactions []*domain.Transaction) []*domain.ProductSummary
}

type productAnalyzer struct {
	options config.Analysis
}

func NewProductAnalyzer(options config.Analysis) ProductAnalyzer {
	return &productAnalyzer{
		options: options,
	}
}

func (a *productAnalyzer) Analyze(transactions []*domain.Transaction) []*domain.ProductSummary {
	return a.analyzeAt(transactions, time.Now())
}

// analyzeAt recebe o instante de processamento para que os testes controlem o
// cálculo de dias sem reajuste.
func (a *productAnalyzer) analyzeAt(transactions []*domain.Transaction, now time.Time) []*domain.ProductSummary {
	DeriveFields(transactions)

	valid := make([]*domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.Date.IsZero() {
			continue
		}
		valid = append(valid, transaction)
	}

	if len(valid) == 0 {
		log.L.Warn("Nenhuma transação com data válida para analisar")
		return []*domain.ProductSummary{}
	}

	// Agrupamento por código de produto preservando a ordem de chegada
	groups := make(map[string][]*domain.Transaction)
	order := make([]string, 0)
	for _, transaction := range valid {
		if _, ok := groups[transaction.ProductCode]; !ok {
			order = append(order, transaction.ProductCode)
		}
		groups[transaction.ProductCode] = append(groups[transaction.ProductCode], transaction)
	}

	// A janela de faturamento é relativa à maior data do dataset inteiro,
	// não à última venda de cada produto
	maxDate := domain.MaxTransactionDate(valid)
	windowStart := utils.SubtractMonths(maxDate, a.options.AnalysisMonths)

	summaries := make([]*domain.ProductSummary, 0, len(order))
	for _, productCode := range order {
		summaries = append(summaries, a.summarizeGroup(productCode, groups[productCode], windowStart, now))
	}

	domain.SortSummaries(summaries)

	log.L.WithFields(log.Fields{
		"products":     len(summaries),
		"transactions": len(valid),
		"window_start": utils.FormatBRDate(windowStart),
	}).Info("Análise de produtos concluída")

	return summaries
}

func (a *productAnalyzer) summarizeGroup(productCode string, group []*domain.Transaction, windowStart, now time.Time) *domain.ProductSummary {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Date.Before(group[j].Date)
	})

	summary := &domain.ProductSummary{
		ProductCode:      productCode,
		Description:      firstNonEmptyDescription(group),
		Client:           firstCharacteristic(group, func(t *domain.Transaction) string { return t.CharClient }),
		Project:          firstCharacteristic(group, func(t *domain.Transaction) string { return t.CharProject }),
		PrincipalClient:  domain.NotAvailable,
		PrincipalProject: domain.NotAvailable,
		SalesCount:       len(group),
	}

	for _, transaction := range group {
		summary.TotalQuantity += transaction.Quantity
	}

	a.fillPriceHistory(summary, group, now)
	a.fillRevenueWindow(summary, group, windowStart)

	summary.Importance = domain.ClassifyImportance(summary.WindowRevenue, a.options.MinimumRevenue)
	summary.Status, summary.Priority = domain.DeriveStatus(
		summary.WindowRevenue,
		summary.MonthsWithSales,
		summary.ReadjustmentAlert,
		summary.Importance,
	)

	return summary
}

// fillPriceHistory percorre a subsequência de vendas válidas (PV_NET > 0) em
// ordem cronológica: preço inicial e atual, variação acumulada e a data do
// último reajuste significativo.
func (a *productAnalyzer) fillPriceHistory(summary *domain.ProductSummary, group []*domain.Transaction, now time.Time) {
	// Sem reajuste detectado, a referência é a primeira venda do produto
	lastReadjustment := group[0].Date

	var prices []float64
	var dates []time.Time
	for _, transaction := range group {
		if transaction.NetUnitPrice <= 0 {
			continue
		}
		prices = append(prices, transaction.NetUnitPrice)
		dates = append(dates, transaction.Date)
	}

	if len(prices) > 0 {
		summary.FirstSale = dates[0]
		summary.InitialPrice = prices[0]
		summary.LastSale = dates[len(dates)-1]
		summary.CurrentPrice = prices[len(prices)-1]

		if summary.InitialPrice > 0 {
			summary.VariationPct = utils.RoundWithTwoDecimalPlace(
				(summary.CurrentPrice - summary.InitialPrice) / summary.InitialPrice * 100,
			)
		}

		for i := 1; i < len(prices); i++ {
			if SignificantChange(prices[i-1], prices[i], a.options.MinimumVariationPct) {
				lastReadjustment = dates[i]
			}
		}
	}

	summary.LastReadjustment = lastReadjustment
	summary.DaysSinceReadjustment = utils.DaysBetween(lastReadjustment, now)
	summary.ReadjustmentAlert = summary.DaysSinceReadjustment > a.options.ReadjustmentAlertDay
}

func (a *productAnalyzer) fillRevenueWindow(summary *domain.ProductSummary, group []*domain.Transaction, windowStart time.Time) {
	periods := make(map[string]struct{})
	clients := make(map[string]struct{})

	clientRevenue := make(map[string]float64)
	clientOrder := make([]string, 0)

	projectCount := make(map[string]int)
	projectOrder := make([]string, 0)

	for _, transaction := range group {
		if transaction.Date.Before(windowStart) {
			continue
		}

		summary.WindowRevenue += transaction.GrossTotal
		periods[transaction.Period] = struct{}{}

		if transaction.ClientCode != "" {
			clients[transaction.ClientCode] = struct{}{}
		}

		if transaction.ClientName != "" {
			if _, ok := clientRevenue[transaction.ClientName]; !ok {
				clientOrder = append(clientOrder, transaction.ClientName)
			}
			clientRevenue[transaction.ClientName] += transaction.GrossTotal
		}

		if project := transaction.CharProject; project != "" && project != domain.NotAvailable {
			if _, ok := projectCount[project]; !ok {
				projectOrder = append(projectOrder, project)
			}
			projectCount[project]++
		}
	}

	summary.WindowRevenue = utils.RoundWithTwoDecimalPlace(summary.WindowRevenue)
	summary.MonthlyAverage = utils.RoundWithTwoDecimalPlace(summary.WindowRevenue / float64(a.options.AnalysisMonths))
	summary.MonthsWithSales = len(periods)
	summary.ClientsServed = len(clients)

	// Empate resolvido pela ordem de primeira ocorrência na janela
	var bestRevenue float64
	for i, name := range clientOrder {
		if i == 0 || clientRevenue[name] > bestRevenue {
			bestRevenue = clientRevenue[name]
			summary.PrincipalClient = name
		}
	}

	var bestCount int
	for i, project := range projectOrder {
		if i == 0 || projectCount[project] > bestCount {
			bestCount = projectCount[project]
			summary.PrincipalProject = project
		}
	}
}

func firstNonEmptyDescription(group []*domain.Transaction) string {
	for _, transaction := range group {
		if transaction.Description != "" {
			return transaction.Description
		}
	}
	return ""
}

func firstCharacteristic(group []*domain.Transaction, value func(*domain.Transaction) string) string {
	for _, transaction := range group {
		if v := value(transaction); v != "" {
			return v
		}
	}
	return domain.NotAvailable
}
