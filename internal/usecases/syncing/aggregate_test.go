package syncing

import (
	"testing"
	"time"

	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.RawOrder
		expected map[string]domain.DailyBucket
	}{
		{
			name:     "Sem pedidos não produz buckets",
			orders:   []domain.RawOrder{},
			expected: map[string]domain.DailyBucket{},
		},
		{
			name: "Pedido cancelado não entra em nenhum acumulador",
			orders: []domain.RawOrder{
				{ExternalID: "1", CreatedAt: day(2026, 3, 1, 10), Total: 100.0},
				{ExternalID: "2", CreatedAt: day(2026, 3, 1, 14), Total: 50.0, Cancelled: true},
				{ExternalID: "3", CreatedAt: day(2026, 3, 2, 9), Total: 30.0},
			},
			expected: map[string]domain.DailyBucket{
				"2026-03-01": {Faturamento: 100.0, VendasQuantidade: 1, VendasValor: 100.0},
				"2026-03-02": {Faturamento: 30.0, VendasQuantidade: 1, VendasValor: 30.0},
			},
		},
		{
			name: "Pedidos do mesmo dia acumulam no mesmo bucket",
			orders: []domain.RawOrder{
				{ExternalID: "1", CreatedAt: day(2026, 3, 5, 8), Total: 10.5},
				{ExternalID: "2", CreatedAt: day(2026, 3, 5, 12), Total: 20.25},
				{ExternalID: "3", CreatedAt: day(2026, 3, 5, 23), Total: 5.0},
			},
			expected: map[string]domain.DailyBucket{
				"2026-03-05": {Faturamento: 35.75, VendasQuantidade: 3, VendasValor: 35.75},
			},
		},
		{
			name: "Dia com apenas pedidos cancelados não gera bucket",
			orders: []domain.RawOrder{
				{ExternalID: "1", CreatedAt: day(2026, 4, 1, 10), Total: 99.0, Cancelled: true},
				{ExternalID: "2", CreatedAt: day(2026, 4, 2, 10), Total: 40.0},
			},
			expected: map[string]domain.DailyBucket{
				"2026-04-02": {Faturamento: 40.0, VendasQuantidade: 1, VendasValor: 40.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.orders)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	orders := []domain.RawOrder{
		{ExternalID: "1", CreatedAt: day(2026, 5, 1, 10), Total: 11.0},
		{ExternalID: "2", CreatedAt: day(2026, 5, 1, 11), Total: 22.0},
		{ExternalID: "3", CreatedAt: day(2026, 5, 2, 12), Total: 33.0, Cancelled: true},
	}

	first := Aggregate(orders)
	second := Aggregate(orders)

	assert.Equal(t, first, second)
}
