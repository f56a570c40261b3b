package client

import (
	"context"
	"errors"

	"github.com/RD107924/ruandi-shop-v2/types"
)

// Scrape1688 把 1688 商品连结交给后端爬虫解析
func (a *Api) Scrape1688(ctx context.Context, url string) (*types.ScrapedProduct, error) {
	var resp struct {
		Status  string                `json:"status"`
		Product *types.ScrapedProduct `json:"product"`
		Error   string                `json:"error"`
	}
	if err := a.do(ctx, "POST", "/api/scrape_1688", "", &types.ScrapeRequest{Url: url}, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" || resp.Product == nil {
		if resp.Error != "" {
			return nil, errors.New(resp.Error)
		}
		return nil, errors.New("擷取商品資訊失敗")
	}
	return resp.Product, nil
}
