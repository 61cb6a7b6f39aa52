package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyImportance(t *testing.T) {
	const minimum = 1000.0

	tests := []struct {
		name     string
		revenue  float64
		expected Importance
		priority int
	}{
		{name: "dez vezes o mínimo exato", revenue: 10000, expected: ImportanceVeryHigh, priority: 1},
		{name: "logo abaixo de dez vezes", revenue: 9999.99, expected: ImportanceHigh, priority: 2},
		{name: "cinco vezes o mínimo exato", revenue: 5000, expected: ImportanceHigh, priority: 2},
		{name: "logo abaixo de cinco vezes", revenue: 4999.99, expected: ImportanceMedium, priority: 3},
		{name: "mínimo exato", revenue: 1000, expected: ImportanceMedium, priority: 3},
		{name: "abaixo do mínimo", revenue: 999.99, expected: ImportanceLow, priority: 4},
		{name: "zero", revenue: 0, expected: ImportanceLow, priority: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importance := ClassifyImportance(tt.revenue, minimum)
			assert.Equal(t, tt.expected, importance)
			assert.Equal(t, tt.priority, importance.Priority())
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name             string
		revenue          float64
		monthsWithSales  int
		alert            bool
		importance       Importance
		expectedStatus   Status
		expectedPriority int
	}{
		{
			name:             "faturamento zero vence qualquer outra regra",
			revenue:          0,
			monthsWithSales:  0,
			alert:            true,
			importance:       ImportanceVeryHigh,
			expectedStatus:   StatusInactive,
			expectedPriority: 5,
		},
		{
			name:             "um mês com vendas vence alerta de reajuste",
			revenue:          5000,
			monthsWithSales:  1,
			alert:            true,
			importance:       ImportanceHigh,
			expectedStatus:   StatusOccasional,
			expectedPriority: 2,
		},
		{
			name:             "alerta com importância alta força prioridade 1",
			revenue:          8000,
			monthsWithSales:  4,
			alert:            true,
			importance:       ImportanceHigh,
			expectedStatus:   StatusAttention,
			expectedPriority: 1,
		},
		{
			name:             "alerta com importância média força prioridade 2",
			revenue:          2000,
			monthsWithSales:  3,
			alert:            true,
			importance:       ImportanceMedium,
			expectedStatus:   StatusAttention,
			expectedPriority: 2,
		},
		{
			name:             "sem alerta mantém prioridade da importância",
			revenue:          12000,
			monthsWithSales:  6,
			alert:            false,
			importance:       ImportanceVeryHigh,
			expectedStatus:   StatusNormal,
			expectedPriority: 1,
		},
		{
			name:             "produto de baixa importância normal",
			revenue:          500,
			monthsWithSales:  2,
			alert:            false,
			importance:       ImportanceLow,
			expectedStatus:   StatusNormal,
			expectedPriority: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, priority := DeriveStatus(tt.revenue, tt.monthsWithSales, tt.alert, tt.importance)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedPriority, priority)
		})
	}
}
