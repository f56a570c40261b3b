package types

// Product 本店商品，来自 GET /api/products
type Product struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	BasePrice  int    `json:"base_price"`
	ServiceFee int    `json:"service_fee"`
	ImageUrl   string `json:"image_url"`
}

// FinalPrice 售价 = 商品价 + 代购服务费
func (p *Product) FinalPrice() int {
	return p.BasePrice + p.ServiceFee
}

// UpsertProductRequest 后台新增/更新商品的请求体（字段名为 API 约定的驼峰）
type UpsertProductRequest struct {
	Name       string `json:"name"`
	ImageUrl   string `json:"imageUrl"`
	BasePrice  int    `json:"basePrice"`
	ServiceFee int    `json:"serviceFee"`
}
