package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "ponto decimal", input: "1234.56", expected: 1234.56},
		{name: "formato brasileiro", input: "1.234,56", expected: 1234.56},
		{name: "apenas vírgula", input: "99,90", expected: 99.9},
		{name: "inteiro", input: "150", expected: 150},
		{name: "com espaços", input: " 10.50 ", expected: 10.5},
		{name: "vazio vale zero", input: "", expected: 0},
		{name: "lixo vale zero", input: "abc", expected: 0},
		{name: "parcialmente numérico vale zero", input: "12x3", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMoney(tt.input))
		})
	}
}
