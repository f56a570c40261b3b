package types

import "strings"

// ThirdPartyPrefix 1688 代购商品的条目 id 前缀
const ThirdPartyPrefix = "1688-"

// Cart 本地购物车：条目 id -> 条目
// 与浏览器端 ruandiCart 槽位的 JSON 结构保持一致
type Cart map[string]*CartEntry

type CartEntry struct {
	Name     string `json:"name"`
	Price    int    `json:"price"` // 台币整数
	Quantity int    `json:"quantity"`
	Remark   string `json:"remark"`
}

// CartTotals 渲染与下单共用的合计，每次都重新计算
type CartTotals struct {
	Amount int `json:"amount"`
	Count  int `json:"count"`
}

// IsThirdParty 判断条目 id 是否来自 1688 代购
func IsThirdParty(id string) bool {
	return strings.HasPrefix(id, ThirdPartyPrefix)
}
