package types

// Order 提交订单的请求体，字段名与 API 约定的驼峰一致
// 客户端不做重试，也没有幂等键：失败后重新提交即是一笔新订单
type Order struct {
	PaopaohuId  string `json:"paopaohuId"`
	PaymentCode string `json:"paymentCode"`
	TotalAmount int    `json:"totalAmount"`
	Items       Cart   `json:"items"`
	Warehouse   string `json:"warehouse"`
}

// OrderRecord 后台订单列表的一行，items_json 为序列化后的 Cart
type OrderRecord struct {
	Id          int    `json:"id"`
	CreatedAt   string `json:"created_at"`
	PaopaohuId  string `json:"paopaohu_id"`
	Warehouse   string `json:"warehouse"`
	PaymentCode string `json:"payment_code"`
	TotalAmount int    `json:"total_amount"`
	ItemsJson   string `json:"items_json"`

	Items Cart `json:"-"` // 由 items_json 解出，坏数据降级为空
}
