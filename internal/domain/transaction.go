package domain

import "time"

// Grupos de produto considerados na análise (mesmo filtro do BI de vendas)
const (
	GroupFinishedProduct       = "PRODUTO ACABADO"
	GroupIndustrializedProduct = "PRODUTO INDUSTRIALIZADO"
)

// NotAvailable é o sentinela usado quando uma característica não existe
const NotAvailable = "N/A"

// Transaction representa uma linha de nota fiscal do ledger de faturamento.
// Os campos de característica vêm do join com a planilha de produtos e os
// campos derivados são preenchidos pelo estágio de transformação.
type Transaction struct {
	ProductCode string    `json:"product_code"`
	Description string    `json:"description"`
	ClientCode  string    `json:"client_code"`
	ClientName  string    `json:"client_name"`
	Date        time.Time `json:"date"`
	Quantity    float64   `json:"quantity"`
	GrossTotal  float64   `json:"gross_total"`
	ICMS        float64   `json:"icms"`
	PISDebit    float64   `json:"pis_debit"`
	CofinsDebit float64   `json:"cofins_debit"`
	Group       string    `json:"group,omitempty"`
	SourceFile  string    `json:"source_file"`

	// Características (join por código de produto; vazio = ausente)
	CharClient  string `json:"char_client,omitempty"`
	CharProject string `json:"char_project,omitempty"`
	CharStatus  string `json:"char_status,omitempty"`

	// Derivados
	NetUnitPrice float64 `json:"net_unit_price"`
	Period       string  `json:"period"`
}

// MaxTransactionDate retorna a maior data presente no dataset (zero value para
// dataset vazio).
func MaxTransactionDate(transactions []*Transaction) time.Time {
	var max time.Time
	for _, t := range transactions {
		if t.Date.After(max) {
			max = t.Date
		}
	}
	return max
}
