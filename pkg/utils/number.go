package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseBRNumber converte um número no formato pt-BR ("1.234,56") para float64.
// Valores vazios ou inválidos são coagidos para zero, como no Power Query.
func ParseBRNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}

// FormatBRMoney formata um valor como "R$ 1.234,56" (casas decimais opcionais).
func FormatBRMoney(value float64, decimals int) string {
	return "R$ " + FormatBRNumber(value, decimals)
}

// FormatBRNumber formata um número no padrão pt-BR ("1.234,56"), sem prefixo
// monetário.
func FormatBRNumber(value float64, decimals int) string {
	formatted := strconv.FormatFloat(math.Abs(value), 'f', decimals, 64)

	intPart := formatted
	decPart := ""
	if idx := strings.Index(formatted, "."); idx >= 0 {
		intPart = formatted[:idx]
		decPart = "," + formatted[idx+1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	sign := ""
	if value < 0 {
		sign = "-"
	}

	return sign + strings.Join(groups, ".") + decPart
}
