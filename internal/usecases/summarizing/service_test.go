package summarizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intep/price-monitor/internal/domain"
)

func sale(code string, year int, total float64) *domain.Transaction {
	return &domain.Transaction{
		ProductCode: code,
		Date:        time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC),
		GrossTotal:  total,
	}
}

func TestAnnualRevenuePerProduct(t *testing.T) {
	summarizer := NewRevenueSummarizer()

	transactions := []*domain.Transaction{
		sale("P1", 2024, 1000.4),
		sale("P1", 2022, 500.6),
		sale("P1", 2024, 250),
		sale("P2", 2023, 9999),
	}

	series := summarizer.AnnualRevenue(transactions, "P1")

	// Anos sempre em ordem crescente, valores no real inteiro
	assert.Equal(t, []string{"2022", "2024"}, series.Years)
	assert.Equal(t, []float64{501, 1250}, series.Revenues)
}

func TestAnnualRevenueGlobal(t *testing.T) {
	summarizer := NewRevenueSummarizer()

	transactions := []*domain.Transaction{
		sale("P1", 2023, 100),
		sale("P2", 2023, 200),
		sale("P2", 2024, 300),
		{ProductCode: "P3", GrossTotal: 999}, // sem data, ignorada
	}

	series := summarizer.AnnualRevenue(transactions, domain.GlobalSeriesKey)

	assert.Equal(t, []string{"2023", "2024"}, series.Years)
	assert.Equal(t, []float64{300, 300}, series.Revenues)
}

func TestAnnualRevenueEmpty(t *testing.T) {
	summarizer := NewRevenueSummarizer()

	series := summarizer.AnnualRevenue(nil, "P1")
	assert.Empty(t, series.Years)
	assert.Empty(t, series.Revenues)
}

func TestBuildDataset(t *testing.T) {
	summarizer := NewRevenueSummarizer()

	transactions := []*domain.Transaction{
		sale("P1", 2024, 100),
		sale("P2", 2024, 200),
	}
	summaries := []*domain.ProductSummary{
		{ProductCode: "P1"},
		{ProductCode: "P2"},
	}

	dataset := summarizer.BuildDataset(transactions, summaries)

	require.Len(t, dataset, 3)
	assert.Contains(t, dataset, domain.GlobalSeriesKey)
	assert.Equal(t, []float64{100}, dataset["P1"].Revenues)
	assert.Equal(t, []float64{300}, dataset[domain.GlobalSeriesKey].Revenues)
}
