package service

import (
	"context"
	"strconv"

	"github.com/RD107924/ruandi-shop-v2/pkg/client"
	"github.com/RD107924/ruandi-shop-v2/types"
)

type CatalogService struct {
	Api  *client.Api
	Cart ICartService
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	List(ctx context.Context) ([]types.Product, error)
	AddToCart(ctx context.Context, p *types.Product) error
}

func (s *CatalogService) List(ctx context.Context) ([]types.Product, error) {
	return s.Api.ListProducts(ctx)
}

// AddToCart 本店商品默认数量 1，无备注，售价含服务费
func (s *CatalogService) AddToCart(ctx context.Context, p *types.Product) error {
	return s.Cart.Add(ctx, strconv.Itoa(p.Id), p.Name, p.FinalPrice(), 1, "")
}
