package analyzing

import (
	"math"
	"time"

	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/pkg/utils"
)

const periodLayout = "2006-01"

// NetUnitPrice calcula o preço de venda líquido unitário: total bruto menos
// ICMS, PIS e Cofins, dividido pela quantidade. Quantidade zero retorna zero
// em vez de propagar divisão inválida.
func NetUnitPrice(grossTotal, icms, pisDebit, cofinsDebit, quantity float64) float64 {
	if quantity == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((grossTotal - icms - pisDebit - cofinsDebit) / quantity)
}

// PeriodBucket converte a data da nota no bucket mensal usado para contar
// meses com venda (formato AAAA-MM).
func PeriodBucket(date time.Time) string {
	return date.Format(periodLayout)
}

// SignificantChange indica se a variação entre dois preços consecutivos
// atinge o percentual mínimo configurado para contar como reajuste. Preço
// anterior zero nunca conta: não há base de comparação.
func SignificantChange(previous, current, minimumVariationPct float64) bool {
	if previous == 0 {
		return false
	}

	return math.Abs(current-previous)/math.Abs(previous) >= minimumVariationPct/100
}

// DeriveFields preenche os campos derivados de cada transação. Chamada
// idempotente: recalcular sobre campos já preenchidos produz o mesmo valor.
func DeriveFields(transactions []*domain.Transaction) {
	for _, transaction := range transactions {
		transaction.NetUnitPrice = NetUnitPrice(
			transaction.GrossTotal,
			transaction.ICMS,
			transaction.PISDebit,
			transaction.CofinsDebit,
			transaction.Quantity,
		)
		transaction.Period = PeriodBucket(transaction.Date)
	}
}
