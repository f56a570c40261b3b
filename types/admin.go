package types

// AdminDashboard 后台登入后的首屏数据
type AdminDashboard struct {
	Products []Product     `json:"products"`
	Orders   []OrderRecord `json:"orders"`
}
