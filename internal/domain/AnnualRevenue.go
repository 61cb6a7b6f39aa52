package domain

// GlobalSeriesKey é a chave sentinela da série anual do dataset inteiro.
const GlobalSeriesKey = "GLOBAL"

// AnnualRevenueSeries é a série de faturamento anual consumida pelo gráfico do
// dashboard: anos distintos em ordem crescente, cada um pareado com a soma do
// faturamento bruto arredondada para a unidade. As chaves JSON ("anos" e
// "vendas") são o contrato com o script embutido no relatório.
type AnnualRevenueSeries struct {
	Years    []string  `json:"anos"`
	Revenues []float64 `json:"vendas"`
}

// RevenueDataset mapeia código de produto (mais a chave global) para a sua
// série anual, pré-calculada para lookup em tempo constante no renderizador.
type RevenueDataset map[string]AnnualRevenueSeries
