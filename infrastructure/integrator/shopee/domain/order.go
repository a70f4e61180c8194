package shopeedomain

// Statuses de pedido da Shopee que ficam fora da agregação
var ExcludedStatuses = map[string]bool{
	"CANCELLED": true,
	"IN_CANCEL": true,
	"UNPAID":    true,
}

// TokenResponse é a resposta do /api/v2/auth/token/get
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpireIn     int64  `json:"expire_in"`
	Error        string `json:"error"`
	Message      string `json:"message"`
}

// Order é a entrada de pedido devolvida pelo get_order_list
type Order struct {
	OrderSN     string  `json:"order_sn"`
	OrderStatus string  `json:"order_status"`
	CreateTime  int64   `json:"create_time"`
	TotalAmount float64 `json:"total_amount"`
}

// OrderListResponse é a resposta paginada do /api/v2/order/get_order_list
type OrderListResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Response struct {
		OrderList  []Order `json:"order_list"`
		More       bool    `json:"more"`
		NextCursor string  `json:"next_cursor"`
	} `json:"response"`
}
