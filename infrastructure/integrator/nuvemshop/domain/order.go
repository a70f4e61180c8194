package nuvemshopdomain

// TokenResponse é a resposta do /apps/authorize/token. O user_id é o
// identificador da loja na API.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	UserID      int64  `json:"user_id"`
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// Order é a entrada de pedido do endpoint /orders. Totais chegam como string.
type Order struct {
	ID            int64  `json:"id"`
	CreatedAt     string `json:"created_at"`
	Total         string `json:"total"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// Excluded aplica o predicado de cancelamento da Nuvemshop
func (o Order) Excluded() bool {
	return o.Status == "cancelled" || o.PaymentStatus == "voided"
}
