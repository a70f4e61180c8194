package syncing

import (
	"time"

	"github.com/mentoria/commerce-sync-api/internal/domain"
)

// BucketDateLayout é a chave de dia dos buckets de agregação
const BucketDateLayout = "2006-01-02"

// Aggregate condensa os pedidos em buckets diários. Pedidos cancelados não
// entram em nenhum acumulador. Função pura: mesmo conjunto de pedidos,
// mesmos buckets.
func Aggregate(orders []domain.RawOrder) map[string]domain.DailyBucket {
	buckets := make(map[string]domain.DailyBucket)

	for _, order := range orders {
		if order.Cancelled {
			continue
		}

		day := order.CreatedAt.Format(BucketDateLayout)

		bucket := buckets[day]
		bucket.Faturamento += order.Total
		bucket.VendasQuantidade++
		bucket.VendasValor += order.Total
		buckets[day] = bucket
	}

	return buckets
}

// ParseBucketDate converte a chave de dia de volta para time.Time
func ParseBucketDate(day string) (time.Time, error) {
	return time.Parse(BucketDateLayout, day)
}
