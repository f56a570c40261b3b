package client

import (
	"context"
	"errors"
	"net/url"

	"github.com/RD107924/ruandi-shop-v2/types"
)

// SubmitOrder 下单是公开接口；HTTP 成功但 status 非 success 也算失败
func (a *Api) SubmitOrder(ctx context.Context, order *types.Order) error {
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := a.do(ctx, "POST", "/api/orders", "", order, &resp); err != nil {
		return err
	}
	if resp.Status != "success" {
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("下单失败")
	}
	return nil
}

// Orders 后台订单列表，需要令牌
func (a *Api) Orders(ctx context.Context, token string) ([]types.OrderRecord, error) {
	var orders []types.OrderRecord
	if err := a.do(ctx, "GET", "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CustomerOrders 客户凭跑跑虎编号自助查单，公开接口
func (a *Api) CustomerOrders(ctx context.Context, paopaohuId string) ([]types.OrderRecord, error) {
	var orders []types.OrderRecord
	path := "/api/orders/" + url.PathEscape(paopaohuId)
	if err := a.do(ctx, "GET", path, "", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
