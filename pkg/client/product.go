package client

import (
	"context"
	"fmt"

	"github.com/RD107924/ruandi-shop-v2/types"
)

// ListProducts 公开接口，不带令牌
func (a *Api) ListProducts(ctx context.Context) ([]types.Product, error) {
	var products []types.Product
	if err := a.do(ctx, "GET", "/api/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (a *Api) CreateProduct(ctx context.Context, token string, req *types.UpsertProductRequest) error {
	return a.do(ctx, "POST", "/api/products", token, req, nil)
}

func (a *Api) UpdateProduct(ctx context.Context, token string, id int, req *types.UpsertProductRequest) error {
	return a.do(ctx, "PUT", fmt.Sprintf("/api/products/%d", id), token, req, nil)
}

func (a *Api) DeleteProduct(ctx context.Context, token string, id int) error {
	return a.do(ctx, "DELETE", fmt.Sprintf("/api/products/%d", id), token, nil, nil)
}
