package shopifydomain

// Statuses financeiros do Shopify que ficam fora da agregação
var ExcludedFinancialStatuses = map[string]bool{
	"voided":   true,
	"refunded": true,
}

// TokenResponse é a resposta do /admin/oauth/access_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

// Order é a entrada de pedido do orders.json. Totais chegam como string.
type Order struct {
	ID              int64   `json:"id"`
	CreatedAt       string  `json:"created_at"`
	TotalPrice      string  `json:"total_price"`
	FinancialStatus string  `json:"financial_status"`
	CancelledAt     *string `json:"cancelled_at"`
}

// Excluded aplica o predicado de cancelamento do Shopify
func (o Order) Excluded() bool {
	if o.CancelledAt != nil && *o.CancelledAt != "" {
		return true
	}
	return ExcludedFinancialStatuses[o.FinancialStatus]
}

// OrdersResponse é a resposta paginada do orders.json
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}
