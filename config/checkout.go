package config

// Checkout 结账页配置：确认语、可选集运仓、转账帐号
type Checkout struct {
	RequiredText string   `json:"required_text" yaml:"required_text"`
	Warehouses   []string `json:"warehouses" yaml:"warehouses"`
	BankAccount  string   `json:"bank_account" yaml:"bank_account"`
}

// RequiredPhrase 未配置时回退到站点默认的「我了解」
func (c *Checkout) RequiredPhrase() string {
	if c == nil || c.RequiredText == "" {
		return "我了解"
	}
	return c.RequiredText
}
