package domain

import "time"

// RawOrder é o registro normalizado de pedido que cada conector devolve.
// O predicado de cancelamento de cada plataforma já foi aplicado pelo
// conector: pedidos cancelados chegam com Cancelled=true e são excluídos
// da agregação.
type RawOrder struct {
	ExternalID string
	CreatedAt  time.Time
	Total      float64
	Status     string
	Cancelled  bool
}

// DailyBucket acumula os valores de um dia de vendas de uma plataforma
type DailyBucket struct {
	Faturamento      float64 `json:"faturamento"`
	VendasQuantidade int     `json:"vendas_quantidade"`
	VendasValor      float64 `json:"vendas_valor"`
}

// DailyMetric é a linha persistida de métricas diárias, única por
// (user_id, date, platform). Criada e atualizada apenas pela reconciliação.
type DailyMetric struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Date             time.Time `json:"date"`
	Platform         Platform  `json:"platform"`
	Faturamento      float64   `json:"faturamento"`
	VendasQuantidade int       `json:"vendas_quantidade"`
	VendasValor      float64   `json:"vendas_valor"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SyncSummary é o resumo devolvido ao chamador após uma sincronização
type SyncSummary struct {
	Platform        Platform `json:"platform"`
	OrdersProcessed int      `json:"orders_processed"`
	DaysUpdated     int      `json:"days_updated"`
}
