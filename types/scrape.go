package types

type ScrapeRequest struct {
	Url string `json:"url"`
}

// SpecGroup 一个规格维度及其可选项，如 颜色 -> [太空黑, 珍珠白]
type SpecGroup struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// ScrapedProduct 后端爬虫返回的 1688 商品描述
type ScrapedProduct struct {
	Id          string      `json:"id"` // 已带 1688- 前缀
	Name        string      `json:"name"`
	Price       int         `json:"price"` // 已折算为台币
	ImageUrl    string      `json:"imageUrl"`
	MinQuantity int         `json:"min_quantity"`
	Specs       []SpecGroup `json:"specs"`
	OriginalUrl string      `json:"original_url"`
}
