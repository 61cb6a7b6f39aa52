package domain

// Importance é o nível de importância de um produto, derivado do faturamento
// da janela de análise comparado ao faturamento mínimo configurado.
type Importance string

const (
	ImportanceVeryHigh Importance = "VERY HIGH"
	ImportanceHigh     Importance = "HIGH"
	ImportanceMedium   Importance = "MEDIUM"
	ImportanceLow      Importance = "LOW"
)

// Status é a situação comercial do produto, derivada depois da importância e
// com precedência sobre a prioridade dela.
type Status string

const (
	StatusInactive   Status = "INACTIVE"
	StatusOccasional Status = "OCCASIONAL"
	StatusAttention  Status = "ATTENTION"
	StatusNormal     Status = "NORMAL"
)

var importancePriority = map[Importance]int{
	ImportanceVeryHigh: 1,
	ImportanceHigh:     2,
	ImportanceMedium:   3,
	ImportanceLow:      4,
}

// Priority retorna a prioridade associada ao nível de importância (1 = mais
// urgente).
func (i Importance) Priority() int {
	if p, ok := importancePriority[i]; ok {
		return p
	}
	return importancePriority[ImportanceLow]
}

// ClassifyImportance aplica a tabela de decisão de importância sobre o
// faturamento da janela: >= 10x o mínimo MUITO ALTA, >= 5x ALTA, >= 1x MÉDIA,
// abaixo disso BAIXA.
func ClassifyImportance(windowRevenue, minimumRevenue float64) Importance {
	switch {
	case windowRevenue >= minimumRevenue*10:
		return ImportanceVeryHigh
	case windowRevenue >= minimumRevenue*5:
		return ImportanceHigh
	case windowRevenue >= minimumRevenue:
		return ImportanceMedium
	default:
		return ImportanceLow
	}
}

// DeriveStatus aplica as regras de status na ordem de precedência e retorna o
// status junto com a prioridade final do produto:
//
//	faturamento zero            -> INACTIVE, prioridade 5
//	até um mês com vendas       -> OCCASIONAL, prioridade da importância
//	alerta de reajuste ativo    -> ATTENTION, prioridade 1 (MUITO ALTA/ALTA) ou 2
//	caso contrário              -> NORMAL, prioridade da importância
func DeriveStatus(windowRevenue float64, monthsWithSales int, readjustmentAlert bool, importance Importance) (Status, int) {
	switch {
	case windowRevenue == 0:
		return StatusInactive, 5
	case monthsWithSales <= 1:
		return StatusOccasional, importance.Priority()
	case readjustmentAlert:
		if importance == ImportanceVeryHigh || importance == ImportanceHigh {
			return StatusAttention, 1
		}
		return StatusAttention, 2
	default:
		return StatusNormal, importance.Priority()
	}
}
