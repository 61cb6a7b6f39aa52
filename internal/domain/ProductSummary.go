package domain

import (
	"sort"
	"time"
)

// ProductSummary é a linha de saída do agregador: uma por código de produto
// presente no conjunto filtrado. Propriedade exclusiva do agregador; somente
// leitura para o renderizador e demais consumidores.
type ProductSummary struct {
	ProductCode string `json:"product_code"`
	Description string `json:"description"`

	// Campos de característica usados pelos filtros do dashboard
	Client  string `json:"client"`
	Project string `json:"project"`

	// Campos calculados a partir do volume de transações na janela
	PrincipalClient  string `json:"principal_client"`
	PrincipalProject string `json:"principal_project"`

	Priority int `json:"priority"`

	// Histórico de preços (subsequência de vendas válidas, PV_NET > 0)
	FirstSale    time.Time `json:"first_sale"`
	InitialPrice float64   `json:"initial_price"`
	LastSale     time.Time `json:"last_sale"`
	CurrentPrice float64   `json:"current_price"`
	VariationPct float64   `json:"variation_pct"`

	// Tempo sem reajuste
	LastReadjustment      time.Time `json:"last_readjustment"`
	DaysSinceReadjustment int       `json:"days_since_readjustment"`
	ReadjustmentAlert     bool      `json:"readjustment_alert"`

	// Faturamento na janela de análise
	WindowRevenue   float64 `json:"window_revenue"`
	MonthlyAverage  float64 `json:"monthly_average"`
	MonthsWithSales int     `json:"months_with_sales"`
	ClientsServed   int     `json:"clients_served"`

	Importance Importance `json:"importance"`
	Status     Status     `json:"status"`

	SalesCount    int     `json:"sales_count"`
	TotalQuantity float64 `json:"total_quantity"`
}

// SortSummaries aplica a ordenação canônica de exibição: prioridade crescente
// e, dentro da mesma prioridade, faturamento da janela decrescente.
func SortSummaries(summaries []*ProductSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Priority != summaries[j].Priority {
			return summaries[i].Priority < summaries[j].Priority
		}
		return summaries[i].WindowRevenue > summaries[j].WindowRevenue
	})
}
