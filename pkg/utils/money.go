package utils

import (
	"strconv"
	"strings"
)

// ParseMoney converte os totais de pedido devolvidos pelas plataformas em
// float64. Aceita ponto decimal ("1234.56"), formato brasileiro com
// milhar ("1.234,56") e valores vazios. Valores não interpretáveis valem
// zero em vez de abortar a sincronização.
func ParseMoney(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ",") {
		// Formato brasileiro: remove separador de milhar e troca a vírgula
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}
