package utils

import "time"

// BRDateLayout é o formato de data usado nos exports do faturamento (Data NF).
const BRDateLayout = "02/01/2006"

// ParseBRDate converte uma data no formato dd/mm/aaaa. Datas vazias retornam o
// zero value para que a linha seja filtrada depois.
func ParseBRDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.Parse(BRDateLayout, dateStr)
}

// FormatBRDate formata uma data como dd/mm/aaaa, ou "N/A" para o zero value.
func FormatBRDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(BRDateLayout)
}

// SubtractMonths subtrai meses de calendário preservando o dia do mês quando
// válido; quando o mês destino é mais curto, o dia é ajustado para o último
// dia desse mês (31/12 - 6 meses = 30/06, não 01/07).
func SubtractMonths(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) - months
	for month < 1 {
		month += 12
		year--
	}

	day := t.Day()
	if last := lastDayOfMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// O dia zero do mês seguinte é o último dia do mês.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween retorna a quantidade de dias inteiros entre duas datas.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
