package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/RD107924/ruandi-shop-v2/pkg/client"
	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/types"
)

// ImportService 1688 商品连结代购
type ImportService struct {
	Api  *client.Api
	Cart ICartService
}

var _ IImportService = (*ImportService)(nil)

type IImportService interface {
	Fetch(ctx context.Context, url string) (*types.ScrapedProduct, error)
	ComposeRemark(p *types.ScrapedProduct, choices []string) string
	AddToCart(ctx context.Context, p *types.ScrapedProduct, choices []string, quantity int) error
}

func (s *ImportService) Fetch(ctx context.Context, url string) (*types.ScrapedProduct, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, response.NewError(400, "請輸入 1688 商品連結！")
	}
	return s.Api.Scrape1688(ctx, url)
}

// ComposeRemark 规格选择按声明顺序序列化成备注：
// 「<规格>: <选项>」… 起批量标记 … 最后固定是「來源: <原始連結>」
func (s *ImportService) ComposeRemark(p *types.ScrapedProduct, choices []string) string {
	parts := make([]string, 0, len(p.Specs)+2)
	for i, spec := range p.Specs {
		if i < len(choices) {
			parts = append(parts, fmt.Sprintf("%s: %s", spec.Type, choices[i]))
		}
	}
	if p.MinQuantity > 1 {
		parts = append(parts, fmt.Sprintf("起批量: %d", p.MinQuantity))
	}
	parts = append(parts, fmt.Sprintf("來源: %s", p.OriginalUrl))
	return strings.Join(parts, "; ")
}

// AddToCart 每个规格维度必须且只能选一个选项；数量不得低于起批量
func (s *ImportService) AddToCart(ctx context.Context, p *types.ScrapedProduct, choices []string, quantity int) error {
	if len(choices) != len(p.Specs) {
		return response.NewError(400, "請為每個規格選擇一個選項")
	}
	for i, spec := range p.Specs {
		if !slices.Contains(spec.Options, choices[i]) {
			return response.NewError(400, fmt.Sprintf("規格「%s」沒有「%s」這個選項", spec.Type, choices[i]))
		}
	}
	if quantity < p.MinQuantity {
		return response.NewError(400, fmt.Sprintf("此商品最少需購買 %d 件！", p.MinQuantity))
	}

	remark := s.ComposeRemark(p, choices)
	return s.Cart.Add(ctx, p.Id, p.Name, p.Price, quantity, remark)
}
