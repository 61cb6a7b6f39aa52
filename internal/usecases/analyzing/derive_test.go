package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/intep/price-monitor/internal/domain"
)

func TestNetUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		gross    float64
		icms     float64
		pis      float64
		cofins   float64
		quantity float64
		expected float64
	}{
		{
			name:     "venda com impostos",
			gross:    1000,
			icms:     120,
			pis:      16.5,
			cofins:   76,
			quantity: 10,
			expected: 78.75,
		},
		{
			name:     "quantidade zero retorna zero",
			gross:    500,
			icms:     60,
			quantity: 0,
			expected: 0,
		},
		{
			name:     "arredondamento em duas casas",
			gross:    100,
			quantity: 3,
			expected: 33.33,
		},
		{
			name:     "devolução com líquido negativo",
			gross:    -100,
			quantity: 2,
			expected: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetUnitPrice(tt.gross, tt.icms, tt.pis, tt.cofins, tt.quantity)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPeriodBucket(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", PeriodBucket(date))

	january := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01", PeriodBucket(january))
}

func TestSignificantChange(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		current  float64
		minPct   float64
		expected bool
	}{
		{
			name:     "reajuste de 5% acima do mínimo",
			previous: 10.00,
			current:  10.50,
			minPct:   0.5,
			expected: true,
		},
		{
			name:     "variação abaixo do mínimo",
			previous: 10.00,
			current:  10.01,
			minPct:   0.5,
			expected: false,
		},
		{
			name:     "variação exatamente no mínimo conta",
			previous: 10.00,
			current:  10.05,
			minPct:   0.5,
			expected: true,
		},
		{
			name:     "queda de preço também conta",
			previous: 10.00,
			current:  9.00,
			minPct:   0.5,
			expected: true,
		},
		{
			name:     "preço anterior zero nunca conta",
			previous: 0,
			current:  10.00,
			minPct:   0.5,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignificantChange(tt.previous, tt.current, tt.minPct))
		})
	}
}

func TestDeriveFieldsIsIdempotent(t *testing.T) {
	transactions := []*domain.Transaction{
		{
			Date:       time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			Quantity:   3,
			GrossTotal: 100,
		},
	}

	DeriveFields(transactions)
	first := *transactions[0]

	DeriveFields(transactions)
	assert.Equal(t, first, *transactions[0])
	assert.Equal(t, 33.33, transactions[0].NetUnitPrice)
	assert.Equal(t, "2024-06", transactions[0].Period)
}
